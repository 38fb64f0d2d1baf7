package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/models"
)

// UsersLister defines the interface that the user listing service must implement.
type UsersLister interface {
	List(ctx context.Context) ([]models.UserSummary, error)
}

// ListUsersErrorResponse represents an error response for user listing
// swagger:model ListUsersErrorResponse
type ListUsersErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler that lists member summaries.
// @Summary List users
// @Description Return a summary of every registered user, main photo included.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserSummary "User summaries returned"
// @Failure 401 {object} handlers.ListUsersErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ListUsersErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListUsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
