package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/dating-app/internal/jwt"
	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/sbilibin2017/dating-app/internal/services"
)

func buildPhotoForm(t *testing.T, fileData []byte, description string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if fileData != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="photo.jpg"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	if description != "" {
		require.NoError(t, writer.WriteField("description", description))
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestAddPhotoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPhotoAdder(ctrl)

	userID := uuid.New()
	photoID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Username: "alice"}
	fileData := []byte("jpeg bytes")

	tests := []struct {
		name         string
		claims       *jwt.Claims
		userID       string
		withFile     bool
		mockSetup    func()
		expectedCode int
	}{
		{
			name:     "success",
			claims:   claims,
			userID:   userID.String(),
			withFile: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					Add(gomock.Any(), userID, userID, fileData, "image/jpeg", "at the beach").
					Return(&models.PhotoDB{
						PhotoID:     photoID,
						UserID:      userID,
						URL:         "https://img.example.com/photos/" + photoID.String(),
						Description: "at the beach",
						IsMain:      true,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "no claims",
			claims:       nil,
			userID:       userID.String(),
			withFile:     true,
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid user id",
			claims:       claims,
			userID:       "not-a-uuid",
			withFile:     true,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing file",
			claims:       claims,
			userID:       userID.String(),
			withFile:     false,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "not owner",
			claims:   claims,
			userID:   userID.String(),
			withFile: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					Add(gomock.Any(), userID, userID, fileData, "image/jpeg", "at the beach").
					Return(nil, services.ErrNotOwner)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:     "upload rejected",
			claims:   claims,
			userID:   userID.String(),
			withFile: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					Add(gomock.Any(), userID, userID, fileData, "image/jpeg", "at the beach").
					Return(nil, services.ErrUploadFailed)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "internal error",
			claims:   claims,
			userID:   userID.String(),
			withFile: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					Add(gomock.Any(), userID, userID, fileData, "image/jpeg", "at the beach").
					Return(nil, errors.New("storage error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var data []byte
			if tt.withFile {
				data = fileData
			}
			body, contentType := buildPhotoForm(t, data, "at the beach")

			req := httptest.NewRequest(http.MethodPost, "/api/users/"+tt.userID+"/photos", body)
			req.Header.Set("Content-Type", contentType)
			req = withURLParams(req, map[string]string{"userId": tt.userID})
			if tt.claims != nil {
				req = withClaims(req, tt.claims)
			}
			w := httptest.NewRecorder()

			handler := NewAddPhotoHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp models.PhotoSummary
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, photoID, resp.ID)
				assert.True(t, resp.IsMain)
				assert.Equal(t, "/api/users/"+userID.String()+"/photos/"+photoID.String(), w.Header().Get("Location"))
			}
		})
	}
}
