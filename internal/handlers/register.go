package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/sbilibin2017/dating-app/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, reg models.UserRegistration) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Gender
	// required: true
	// default: male
	Gender string `json:"gender"`

	// Display name
	// required: true
	// default: John
	KnownAs string `json:"known_as"`

	// Date of birth (YYYY-MM-DD)
	// required: true
	// default: 1990-01-01
	DateOfBirth string `json:"date_of_birth"`

	// City
	// required: true
	// default: Riga
	City string `json:"city"`

	// Country
	// required: true
	// default: Latvia
	Country string `json:"country"`
}

// RegisterResponse represents the created user, without password fields
// swagger:model RegisterResponse
type RegisterResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	KnownAs   string    `json:"known_as"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Username already exists
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The username is lowercased and must be unique. The password is salted and hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Username already exists / invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid date of birth",
			})
			return
		}

		user, err := svc.Register(r.Context(), models.UserRegistration{
			Username:    req.Username,
			Password:    req.Password,
			Gender:      req.Gender,
			KnownAs:     req.KnownAs,
			DateOfBirth: dateOfBirth,
			City:        req.City,
			Country:     req.Country,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Username already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Location", "/api/users/"+user.UserID.String())
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			ID:        user.UserID.String(),
			Username:  user.Username,
			KnownAs:   user.KnownAs,
			Age:       user.Age(),
			Gender:    user.Gender,
			City:      user.City,
			Country:   user.Country,
			CreatedAt: user.CreatedAt,
		})
	}
}
