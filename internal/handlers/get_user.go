package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/sbilibin2017/dating-app/internal/services"
)

// UserGetter defines the interface that the user detail service must implement.
type UserGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDetail, error)
}

// GetUserErrorResponse represents an error response for fetching a user
// swagger:model GetUserErrorResponse
type GetUserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetUserHandler returns an HTTP handler for fetching a single user profile.
// @Summary Get user
// @Description Return the full profile of a user, photos included.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} models.UserDetail "User profile returned"
// @Failure 400 {object} handlers.GetUserErrorResponse "Invalid user id"
// @Failure 401 {object} handlers.GetUserErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GetUserErrorResponse "User not found"
// @Failure 500 {object} handlers.GetUserErrorResponse "Internal server error"
// @Router /users/{userId} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetUserErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		user, err := svc.Get(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
