package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/dating-app/internal/jwt"
	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/sbilibin2017/dating-app/internal/services"
)

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileUpdater(ctrl)

	userID := uuid.New()
	otherID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Username: "alice"}

	validBody := UpdateUserRequest{
		Introduction: "hello",
		LookingFor:   "friends",
		Interests:    "hiking",
		City:         "Riga",
		Country:      "Latvia",
	}

	tests := []struct {
		name         string
		claims       *jwt.Claims
		userID       string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			claims:    claims,
			userID:    userID.String(),
			inputBody: validBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), userID, userID, models.ProfileUpdate{
						Introduction: "hello",
						LookingFor:   "friends",
						Interests:    "hiking",
						City:         "Riga",
						Country:      "Latvia",
					}).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "no claims",
			claims:       nil,
			userID:       userID.String(),
			inputBody:    validBody,
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid user id",
			claims:       claims,
			userID:       "not-a-uuid",
			inputBody:    validBody,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			claims:       claims,
			userID:       userID.String(),
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "not owner",
			claims:    claims,
			userID:    otherID.String(),
			inputBody: validBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), userID, otherID, gomock.Any()).
					Return(services.ErrNotOwner)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:      "user not found",
			claims:    claims,
			userID:    userID.String(),
			inputBody: validBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), userID, userID, gomock.Any()).
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "internal error",
			claims:    claims,
			userID:    userID.String(),
			inputBody: validBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), userID, userID, gomock.Any()).
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/users/"+tt.userID, bytes.NewReader(bodyBytes))
			req = withURLParams(req, map[string]string{"userId": tt.userID})
			if tt.claims != nil {
				req = withClaims(req, tt.claims)
			}
			w := httptest.NewRecorder()

			handler := NewUpdateUserHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
