package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/middlewares"
	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/sbilibin2017/dating-app/internal/services"
)

// PhotoAdder defines the interface that the photo upload service must implement.
type PhotoAdder interface {
	Add(ctx context.Context, subjectID, userID uuid.UUID, data []byte, contentType, description string) (*models.PhotoDB, error)
}

// AddPhotoErrorResponse represents an error response for a photo upload
// swagger:model AddPhotoErrorResponse
type AddPhotoErrorResponse struct {
	// Error message
	// default: could not upload photo
	Error string `json:"error"`
}

// NewAddPhotoHandler returns an HTTP handler for uploading a photo to a user's collection.
// @Summary Add photo
// @Description Upload a photo file for the user. The first photo in a collection becomes the main photo.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param file formData file true "Photo file"
// @Param description formData string false "Photo description"
// @Success 201 {object} models.PhotoSummary "Photo added"
// @Failure 400 {object} handlers.AddPhotoErrorResponse "Invalid request or upload rejected"
// @Failure 401 {object} handlers.AddPhotoErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.AddPhotoErrorResponse "Internal server error"
// @Router /users/{userId}/photos [post]
func NewAddPhotoHandler(svc PhotoAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AddPhotoErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddPhotoErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddPhotoErrorResponse{
				Error: "invalid multipart form",
			})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddPhotoErrorResponse{
				Error: "missing photo file",
			})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddPhotoErrorResponse{
				Error: "could not read photo file",
			})
			return
		}

		contentType := header.Header.Get("Content-Type")
		description := r.FormValue("description")

		photo, err := svc.Add(r.Context(), claims.UserID, userID, data, contentType, description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(AddPhotoErrorResponse{
					Error: "Unauthorized",
				})
			case errors.Is(err, services.ErrUploadFailed):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddPhotoErrorResponse{
					Error: "could not upload photo",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddPhotoErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/users/%s/photos/%s", userID, photo.PhotoID))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(photo.Summary())
	}
}
