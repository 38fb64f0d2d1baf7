package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/models"
)

// ProfileCacheRepository caches user detail aggregates in Redis. Profile
// browsing is read-heavy, so cached entries are served until they expire or
// a photo/profile mutation invalidates them.
type ProfileCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewProfileCacheRepository creates a new repository instance with the given TTL.
func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(userID uuid.UUID) string {
	return fmt.Sprintf("user_detail:%s", userID)
}

// Get fetches a cached user detail. Returns an error on a cache miss.
func (r *ProfileCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserDetail, error) {
	key := profileKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("user detail not found in cache for %s", userID)
		}
		return nil, err
	}

	var detail models.UserDetail
	if err := json.Unmarshal([]byte(val), &detail); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &detail, nil
}

// Set caches a user detail with expiration.
func (r *ProfileCacheRepository) Set(ctx context.Context, userID uuid.UUID, detail *models.UserDetail) error {
	key := profileKey(userID)

	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached detail for a user. Called after photo and
// profile mutations.
func (r *ProfileCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := profileKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "invalidated",
		"error", err,
	)

	return err
}
