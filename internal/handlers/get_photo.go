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

// PhotoGetter defines the interface that the photo lookup service must implement.
type PhotoGetter interface {
	Get(ctx context.Context, photoID uuid.UUID) (*models.PhotoDB, error)
}

// GetPhotoErrorResponse represents an error response for fetching a photo
// swagger:model GetPhotoErrorResponse
type GetPhotoErrorResponse struct {
	// Error message
	// default: Photo not found
	Error string `json:"error"`
}

// NewGetPhotoHandler returns an HTTP handler for fetching a single photo.
// @Summary Get photo
// @Description Return a photo by its id.
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param id path string true "Photo ID"
// @Success 200 {object} models.PhotoSummary "Photo returned"
// @Failure 400 {object} handlers.GetPhotoErrorResponse "Invalid photo id"
// @Failure 401 {object} handlers.GetPhotoErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GetPhotoErrorResponse "Photo not found"
// @Failure 500 {object} handlers.GetPhotoErrorResponse "Internal server error"
// @Router /users/{userId}/photos/{id} [get]
func NewGetPhotoHandler(svc PhotoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetPhotoErrorResponse{
				Error: "invalid photo id",
			})
			return
		}

		photo, err := svc.Get(r.Context(), photoID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPhotoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetPhotoErrorResponse{
					Error: "Photo not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetPhotoErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(photo.Summary())
	}
}
