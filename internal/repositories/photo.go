package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/models"
)

type PhotoReadRepository struct {
	db *sqlx.DB
}

func NewPhotoReadRepository(db *sqlx.DB) *PhotoReadRepository {
	return &PhotoReadRepository{db: db}
}

// GetByID returns the photo with the given id, or nil when it does not exist.
func (r *PhotoReadRepository) GetByID(ctx context.Context, photoID uuid.UUID) (*models.PhotoDB, error) {
	const query = `
		SELECT photo_id, user_id, url, public_id, description, is_main, added_at
		FROM photos
		WHERE photo_id = $1
	`

	var photo models.PhotoDB
	err := r.db.GetContext(ctx, &photo, query, photoID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &photo, nil
}

// GetMainForUser returns the user's main photo, or nil when the user has none.
func (r *PhotoReadRepository) GetMainForUser(ctx context.Context, userID uuid.UUID) (*models.PhotoDB, error) {
	const query = `
		SELECT photo_id, user_id, url, public_id, description, is_main, added_at
		FROM photos
		WHERE user_id = $1 AND is_main
	`

	var photo models.PhotoDB
	err := r.db.GetContext(ctx, &photo, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &photo, nil
}

type PhotoWriteRepository struct {
	db *sqlx.DB
}

func NewPhotoWriteRepository(db *sqlx.DB) *PhotoWriteRepository {
	return &PhotoWriteRepository{db: db}
}

// Save inserts a new photo record.
func (r *PhotoWriteRepository) Save(ctx context.Context, photo *models.PhotoDB) error {
	const query = `
		INSERT INTO photos (photo_id, user_id, url, public_id, description, is_main, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{
		photo.PhotoID, photo.UserID, photo.URL, photo.PublicID,
		photo.Description, photo.IsMain, photo.AddedAt,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photo.PhotoID, photo.UserID, photo.IsMain},
		"error", err,
	)

	return err
}

// SetMain makes the given photo the user's main photo. The current main (if
// any) is cleared and the target is set in one transaction, with the user's
// photo rows locked so the one-main-per-user invariant holds under
// concurrent calls.
func (r *PhotoWriteRepository) SetMain(ctx context.Context, userID, photoID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}
	defer tx.Rollback()

	const lockQuery = `SELECT photo_id FROM photos WHERE user_id = $1 FOR UPDATE`
	if _, err := tx.ExecContext(ctx, lockQuery, userID); err != nil {
		logger.Log.Errorw("failed to lock photo rows", "user_id", userID, "error", err)
		return err
	}

	const clearQuery = `UPDATE photos SET is_main = FALSE WHERE user_id = $1 AND is_main`
	if _, err := tx.ExecContext(ctx, clearQuery, userID); err != nil {
		logger.Log.Errorw("failed to clear main photo", "user_id", userID, "error", err)
		return err
	}

	const setQuery = `UPDATE photos SET is_main = TRUE WHERE photo_id = $1 AND user_id = $2`
	res, err := tx.ExecContext(ctx, setQuery, photoID, userID)
	if err != nil {
		logger.Log.Errorw("failed to set main photo", "photo_id", photoID, "error", err)
		return err
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected != 1 {
		return fmt.Errorf("set main photo affected %d rows", rowsAffected)
	}

	err = tx.Commit()

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(setQuery), " "),
		"args", []any{photoID, userID},
		"error", err,
	)

	return err
}

// Delete removes the photo record.
func (r *PhotoWriteRepository) Delete(ctx context.Context, photoID uuid.UUID) error {
	const query = `DELETE FROM photos WHERE photo_id = $1`

	res, err := r.db.ExecContext(ctx, query, photoID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID},
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
