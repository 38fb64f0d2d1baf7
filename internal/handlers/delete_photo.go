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

// PhotoDeleter defines the interface that the photo deletion service must implement.
type PhotoDeleter interface {
	Delete(ctx context.Context, subjectID, userID, photoID uuid.UUID) error
}

// DeletePhotoResponse represents a successful photo deletion response
// swagger:model DeletePhotoResponse
type DeletePhotoResponse struct {
	// Deleted photo id
	PhotoID uuid.UUID `json:"photo_id"`
}

// DeletePhotoErrorResponse represents an error response for deleting a photo
// swagger:model DeletePhotoErrorResponse
type DeletePhotoErrorResponse struct {
	// Error message
	// default: You cannot delete your main photo
	Error string `json:"error"`
}

// NewDeletePhotoHandler returns an HTTP handler that removes a photo from a user's collection.
// @Summary Delete photo
// @Description Remove a photo from the user's collection and from the external image host. The main photo cannot be deleted.
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param id path string true "Photo ID"
// @Success 200 {object} handlers.DeletePhotoResponse "Photo deleted"
// @Failure 400 {object} handlers.DeletePhotoErrorResponse "Photo is the main photo"
// @Failure 401 {object} handlers.DeletePhotoErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DeletePhotoErrorResponse "Photo not found"
// @Failure 500 {object} handlers.DeletePhotoErrorResponse "Internal server error"
// @Router /users/{userId}/photos/{id} [delete]
func NewDeletePhotoHandler(svc PhotoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeletePhotoErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeletePhotoErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		photoID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeletePhotoErrorResponse{
				Error: "invalid photo id",
			})
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, userID, photoID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(DeletePhotoErrorResponse{
					Error: "Unauthorized",
				})
			case errors.Is(err, services.ErrPhotoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeletePhotoErrorResponse{
					Error: "Photo not found",
				})
			case errors.Is(err, services.ErrMainPhotoDelete):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DeletePhotoErrorResponse{
					Error: "You cannot delete your main photo",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeletePhotoErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeletePhotoResponse{PhotoID: photoID})
	}
}
