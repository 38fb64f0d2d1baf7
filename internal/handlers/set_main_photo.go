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
	"github.com/sbilibin2017/dating-app/internal/services"
)

// MainPhotoSetter defines the interface that the main-photo service must implement.
type MainPhotoSetter interface {
	SetMain(ctx context.Context, subjectID, userID, photoID uuid.UUID) error
}

// SetMainPhotoErrorResponse represents an error response for promoting a photo
// swagger:model SetMainPhotoErrorResponse
type SetMainPhotoErrorResponse struct {
	// Error message
	// default: This is already your main photo
	Error string `json:"error"`
}

// NewSetMainPhotoHandler returns an HTTP handler that promotes a photo to main.
// @Summary Set main photo
// @Description Promote one of the user's photos to be the main photo. The previous main photo is demoted in the same transaction.
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param id path string true "Photo ID"
// @Success 204 "Main photo updated"
// @Failure 400 {object} handlers.SetMainPhotoErrorResponse "Photo is already the main photo"
// @Failure 401 {object} handlers.SetMainPhotoErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SetMainPhotoErrorResponse "Photo not found"
// @Failure 500 {object} handlers.SetMainPhotoErrorResponse "Internal server error"
// @Router /users/{userId}/photos/{id}/setMain [post]
func NewSetMainPhotoHandler(svc MainPhotoSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SetMainPhotoErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetMainPhotoErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		photoID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetMainPhotoErrorResponse{
				Error: "invalid photo id",
			})
			return
		}

		if err := svc.SetMain(r.Context(), claims.UserID, userID, photoID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(SetMainPhotoErrorResponse{
					Error: "Unauthorized",
				})
			case errors.Is(err, services.ErrPhotoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SetMainPhotoErrorResponse{
					Error: "Photo not found",
				})
			case errors.Is(err, services.ErrAlreadyMain):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SetMainPhotoErrorResponse{
					Error: "This is already your main photo",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SetMainPhotoErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
