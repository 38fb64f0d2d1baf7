package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/middlewares"
	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/sbilibin2017/dating-app/internal/services"
)

// ProfileUpdater defines the interface that the profile update service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, subjectID, userID uuid.UUID, update models.ProfileUpdate) error
}

// UpdateUserRequest represents the JSON body for a profile update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Free-form introduction text
	Introduction string `json:"introduction"`

	// What the user is looking for
	LookingFor string `json:"looking_for"`

	// Interests
	Interests string `json:"interests"`

	// City
	City string `json:"city"`

	// Country
	Country string `json:"country"`
}

// UpdateUserErrorResponse represents an error response for a profile update
// swagger:model UpdateUserErrorResponse
type UpdateUserErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewUpdateUserHandler returns an HTTP handler for updating the caller's own profile.
// @Summary Update user profile
// @Description Update the editable profile fields. Users may only update their own profile.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Profile Update Request"
// @Success 204 "Profile updated"
// @Failure 400 {object} handlers.UpdateUserErrorResponse "Invalid request"
// @Failure 401 {object} handlers.UpdateUserErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UpdateUserErrorResponse "User not found"
// @Failure 500 {object} handlers.UpdateUserErrorResponse "Internal server error"
// @Router /users/{userId} [put]
func NewUpdateUserHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		update := models.ProfileUpdate{
			Introduction: req.Introduction,
			LookingFor:   req.LookingFor,
			Interests:    req.Interests,
			City:         req.City,
			Country:      req.Country,
		}

		if err := svc.Update(r.Context(), claims.UserID, userID, update); err != nil {
			switch {
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "Unauthorized",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
