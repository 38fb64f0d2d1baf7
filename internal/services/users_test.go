package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/sbilibin2017/dating-app/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserAggregateReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockCache := services.NewMockProfileCache(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockCache)

	users := []models.UserListItem{
		{
			UserDB: models.UserDB{
				UserID:      uuid.New(),
				Username:    "alice",
				KnownAs:     "Alice",
				DateOfBirth: time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
			},
			MainPhotoURL: "http://img.example/a",
		},
		{
			UserDB: models.UserDB{
				UserID:      uuid.New(),
				Username:    "bob",
				DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	mockReader.EXPECT().List(gomock.Any()).Return(users, nil)

	summaries, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "alice", summaries[0].Username)
	assert.Equal(t, "http://img.example/a", summaries[0].MainPhotoURL)
	assert.Empty(t, summaries[1].MainPhotoURL)
}

func TestUserService_Get_CacheMissThenHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserAggregateReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockCache := services.NewMockProfileCache(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockCache)

	userID := uuid.New()
	user := &models.UserDB{
		UserID:      userID,
		Username:    "alice",
		KnownAs:     "Alice",
		DateOfBirth: time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	photos := []models.PhotoDB{
		{PhotoID: uuid.New(), UserID: userID, URL: "http://img.example/a", IsMain: true},
		{PhotoID: uuid.New(), UserID: userID, URL: "http://img.example/b"},
	}

	// First call: miss, read from the database, populate cache.
	mockCache.EXPECT().Get(gomock.Any(), userID).Return(nil, errors.New("cache miss"))
	mockReader.EXPECT().GetWithPhotos(gomock.Any(), userID).Return(user, photos, nil)
	var cached *models.UserDetail
	mockCache.EXPECT().Set(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, detail *models.UserDetail) error {
			cached = detail
			return nil
		})

	detail, err := svc.Get(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", detail.Username)
	assert.Len(t, detail.Photos, 2)
	assert.True(t, detail.Photos[0].IsMain)

	// Second call: served from cache, no database read.
	mockCache.EXPECT().Get(gomock.Any(), userID).Return(cached, nil)

	detail2, err := svc.Get(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, detail, detail2)
}

func TestUserService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserAggregateReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockCache := services.NewMockProfileCache(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockCache)

	userID := uuid.New()
	mockCache.EXPECT().Get(gomock.Any(), userID).Return(nil, errors.New("cache miss"))
	mockReader.EXPECT().GetWithPhotos(gomock.Any(), userID).Return(nil, nil, nil)

	_, err := svc.Get(context.Background(), userID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserAggregateReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockCache := services.NewMockProfileCache(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockCache)

	userID := uuid.New()
	update := models.ProfileUpdate{Introduction: "hi", LookingFor: "friends", City: "Riga"}

	mockWriter.EXPECT().UpdateProfile(gomock.Any(), userID, update).Return(nil)
	mockCache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)

	err := svc.Update(context.Background(), userID, userID, update)
	assert.NoError(t, err)
}

func TestUserService_Update_OtherUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserAggregateReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockCache := services.NewMockProfileCache(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockCache)

	err := svc.Update(context.Background(), uuid.New(), uuid.New(), models.ProfileUpdate{})
	assert.ErrorIs(t, err, services.ErrNotOwner)
}
