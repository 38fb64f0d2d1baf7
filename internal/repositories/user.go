package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil when no
// such user exists. Usernames are stored lowercase.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, password_salt, gender, known_as,
		       date_of_birth, city, country, introduction, looking_for, interests,
		       created_at, last_active
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetWithPhotos returns the user aggregate with its photo collection
// pre-loaded, or nil when the user does not exist.
func (r *UserReadRepository) GetWithPhotos(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.PhotoDB, error) {
	const userQuery = `
		SELECT user_id, username, password_hash, password_salt, gender, known_as,
		       date_of_birth, city, country, introduction, looking_for, interests,
		       created_at, last_active
		FROM users
		WHERE user_id = $1
	`
	const photosQuery = `
		SELECT photo_id, user_id, url, public_id, description, is_main, added_at
		FROM photos
		WHERE user_id = $1
		ORDER BY added_at
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, userQuery, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(userQuery), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var photos []models.PhotoDB
	if err := r.db.SelectContext(ctx, &photos, photosQuery, userID); err != nil {
		return nil, nil, err
	}

	return &user, photos, nil
}

// List returns all users joined with the URL of their main photo.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserListItem, error) {
	const query = `
		SELECT u.user_id, u.username, u.password_hash, u.password_salt, u.gender,
		       u.known_as, u.date_of_birth, u.city, u.country, u.introduction,
		       u.looking_for, u.interests, u.created_at, u.last_active,
		       COALESCE(p.url, '') AS main_photo_url
		FROM users u
		LEFT JOIN photos p ON p.user_id = u.user_id AND p.is_main
		ORDER BY u.last_active DESC
	`

	var users []models.UserListItem
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user record.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, username, password_hash, password_salt, gender,
		                   known_as, date_of_birth, city, country, created_at, last_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	args := []any{
		user.UserID, user.Username, user.PasswordHash, user.PasswordSalt,
		user.Gender, user.KnownAs, user.DateOfBirth, user.City, user.Country,
		user.CreatedAt, user.LastActive,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Username},
		"error", err,
	)

	return err
}

// UpdateProfile overwrites the user-editable profile fields.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) error {
	const query = `
		UPDATE users
		SET introduction = $2, looking_for = $3, interests = $4, city = $5, country = $6
		WHERE user_id = $1
	`
	args := []any{userID, update.Introduction, update.LookingFor, update.Interests, update.City, update.Country}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TouchLastActive bumps the user's last_active timestamp.
func (r *UserWriteRepository) TouchLastActive(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET last_active = NOW() WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}
