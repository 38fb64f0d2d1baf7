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
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUsersLister(ctrl)

	users := []models.UserSummary{
		{ID: uuid.New(), Username: "alice", KnownAs: "Alice"},
		{ID: uuid.New(), Username: "bob", KnownAs: "Bob", MainPhotoURL: "https://img.example.com/bob.jpg"},
	}

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockSvc.EXPECT().
					List(gomock.Any()).
					Return(users, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockSvc.EXPECT().
					List(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			w := httptest.NewRecorder()

			handler := NewListUsersHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []models.UserSummary
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				assert.Equal(t, users[0].Username, resp[0].Username)
			}
		})
	}
}
