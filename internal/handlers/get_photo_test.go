package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/sbilibin2017/dating-app/internal/services"
)

func TestGetPhotoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPhotoGetter(ctrl)

	userID := uuid.New()
	photoID := uuid.New()
	photo := &models.PhotoDB{
		PhotoID: photoID,
		UserID:  userID,
		URL:     "https://img.example.com/photos/" + photoID.String(),
		IsMain:  true,
	}

	tests := []struct {
		name         string
		photoID      string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:    "success",
			photoID: photoID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), photoID).
					Return(photo, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid photo id",
			photoID:      "not-a-uuid",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "photo not found",
			photoID: photoID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), photoID).
					Return(nil, services.ErrPhotoNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "internal error",
			photoID: photoID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), photoID).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID.String()+"/photos/"+tt.photoID, nil)
			req = withURLParams(req, map[string]string{"userId": userID.String(), "id": tt.photoID})
			w := httptest.NewRecorder()

			handler := NewGetPhotoHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.PhotoSummary
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, photoID, resp.ID)
			}
		})
	}
}
