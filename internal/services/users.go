package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/models"
)

// ErrUserNotFound is returned when the requested user does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserAggregateReader reads user aggregates with their photo collections.
type UserAggregateReader interface {
	GetWithPhotos(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.PhotoDB, error)
	List(ctx context.Context) ([]models.UserListItem, error)
}

// ProfileWriter updates user-editable profile fields.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) error
}

// ProfileCache caches user detail aggregates.
type ProfileCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDetail, error)
	Set(ctx context.Context, userID uuid.UUID, detail *models.UserDetail) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// UserService handles profile reads and updates.
type UserService struct {
	reader UserAggregateReader
	writer ProfileWriter
	cache  ProfileCache
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserAggregateReader, writer ProfileWriter, cache ProfileCache) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns short summaries of all users with their main photo URLs.
func (svc *UserService) List(ctx context.Context) ([]models.UserSummary, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		u := &users[i]
		summaries = append(summaries, models.UserSummary{
			ID:           u.UserID,
			Username:     u.Username,
			KnownAs:      u.KnownAs,
			Age:          u.Age(),
			Gender:       u.Gender,
			City:         u.City,
			Country:      u.Country,
			MainPhotoURL: u.MainPhotoURL,
			LastActive:   u.LastActive,
		})
	}

	return summaries, nil
}

// Get returns the full user detail with photos, served from cache when
// available.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDetail, error) {
	if svc.cache != nil {
		if detail, err := svc.cache.Get(ctx, userID); err == nil && detail != nil {
			return detail, nil
		}
	}

	user, photos, err := svc.reader.GetWithPhotos(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	detail := &models.UserDetail{
		ID:           user.UserID,
		Username:     user.Username,
		KnownAs:      user.KnownAs,
		Age:          user.Age(),
		Gender:       user.Gender,
		City:         user.City,
		Country:      user.Country,
		Introduction: user.Introduction,
		LookingFor:   user.LookingFor,
		Interests:    user.Interests,
		CreatedAt:    user.CreatedAt,
		LastActive:   user.LastActive,
		Photos:       make([]models.PhotoSummary, 0, len(photos)),
	}
	for i := range photos {
		detail.Photos = append(detail.Photos, photos[i].Summary())
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, userID, detail); err != nil {
			logger.Log.Warnw("failed to cache user detail", "user_id", userID, "err", err)
		}
	}

	return detail, nil
}

// Update overwrites the subject's own profile fields.
func (svc *UserService) Update(ctx context.Context, subjectID, userID uuid.UUID, update models.ProfileUpdate) error {
	if err := authorizeOwner(subjectID, userID); err != nil {
		return err
	}

	if err := svc.writer.UpdateProfile(ctx, userID, update); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warnw("failed to invalidate cached profile", "user_id", userID, "err", err)
		}
	}

	return nil
}
