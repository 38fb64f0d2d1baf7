package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/dating-app/internal/jwt"
	"github.com/sbilibin2017/dating-app/internal/services"
)

func TestSetMainPhotoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMainPhotoSetter(ctrl)

	userID := uuid.New()
	photoID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Username: "alice"}

	tests := []struct {
		name         string
		claims       *jwt.Claims
		userID       string
		photoID      string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:    "success",
			claims:  claims,
			userID:  userID.String(),
			photoID: photoID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					SetMain(gomock.Any(), userID, userID, photoID).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "no claims",
			claims:       nil,
			userID:       userID.String(),
			photoID:      photoID.String(),
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid user id",
			claims:       claims,
			userID:       "not-a-uuid",
			photoID:      photoID.String(),
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid photo id",
			claims:       claims,
			userID:       userID.String(),
			photoID:      "not-a-uuid",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "not owner",
			claims:  claims,
			userID:  userID.String(),
			photoID: photoID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					SetMain(gomock.Any(), userID, userID, photoID).
					Return(services.ErrNotOwner)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:    "photo not found",
			claims:  claims,
			userID:  userID.String(),
			photoID: photoID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					SetMain(gomock.Any(), userID, userID, photoID).
					Return(services.ErrPhotoNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "already main",
			claims:  claims,
			userID:  userID.String(),
			photoID: photoID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					SetMain(gomock.Any(), userID, userID, photoID).
					Return(services.ErrAlreadyMain)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "internal error",
			claims:  claims,
			userID:  userID.String(),
			photoID: photoID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					SetMain(gomock.Any(), userID, userID, photoID).
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			url := "/api/users/" + tt.userID + "/photos/" + tt.photoID + "/setMain"
			req := httptest.NewRequest(http.MethodPost, url, nil)
			req = withURLParams(req, map[string]string{"userId": tt.userID, "id": tt.photoID})
			if tt.claims != nil {
				req = withClaims(req, tt.claims)
			}
			w := httptest.NewRecorder()

			handler := NewSetMainPhotoHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
