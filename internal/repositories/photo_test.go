package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/dating-app/internal/models"
)

func TestPhotoReadRepository_GetByID(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewPhotoWriteRepository(db)
	readRepo := NewPhotoReadRepository(db)
	ctx := context.Background()

	user := newTestUser("ivan")
	require.NoError(t, userRepo.Save(ctx, user))

	photo := &models.PhotoDB{
		PhotoID:     uuid.New(),
		UserID:      user.UserID,
		URL:         "https://img.example.com/ivan.jpg",
		PublicID:    "photos/2026/8/abc",
		Description: "sunset",
		IsMain:      true,
		AddedAt:     time.Now().UTC(),
	}
	require.NoError(t, writeRepo.Save(ctx, photo))

	t.Run("Found", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, photo.PhotoID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, photo.URL, got.URL)
		assert.Equal(t, photo.PublicID, got.PublicID)
		assert.True(t, got.IsMain)
	})

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPhotoReadRepository_GetMainForUser(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewPhotoWriteRepository(db)
	readRepo := NewPhotoReadRepository(db)
	ctx := context.Background()

	user := newTestUser("judy")
	require.NoError(t, userRepo.Save(ctx, user))

	main := &models.PhotoDB{
		PhotoID: uuid.New(),
		UserID:  user.UserID,
		URL:     "https://img.example.com/main.jpg",
		IsMain:  true,
		AddedAt: time.Now().UTC(),
	}
	other := &models.PhotoDB{
		PhotoID: uuid.New(),
		UserID:  user.UserID,
		URL:     "https://img.example.com/other.jpg",
		AddedAt: time.Now().UTC(),
	}
	require.NoError(t, writeRepo.Save(ctx, main))
	require.NoError(t, writeRepo.Save(ctx, other))

	t.Run("Found", func(t *testing.T) {
		got, err := readRepo.GetMainForUser(ctx, user.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, main.PhotoID, got.PhotoID)
	})

	t.Run("NoMainPhoto", func(t *testing.T) {
		got, err := readRepo.GetMainForUser(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPhotoWriteRepository_Save_OneMainPerUser(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewPhotoWriteRepository(db)
	ctx := context.Background()

	user := newTestUser("kevin")
	require.NoError(t, userRepo.Save(ctx, user))

	first := &models.PhotoDB{
		PhotoID: uuid.New(),
		UserID:  user.UserID,
		URL:     "https://img.example.com/1.jpg",
		IsMain:  true,
		AddedAt: time.Now().UTC(),
	}
	require.NoError(t, writeRepo.Save(ctx, first))

	// The partial unique index refuses a second main photo for the same user.
	second := &models.PhotoDB{
		PhotoID: uuid.New(),
		UserID:  user.UserID,
		URL:     "https://img.example.com/2.jpg",
		IsMain:  true,
		AddedAt: time.Now().UTC(),
	}
	assert.Error(t, writeRepo.Save(ctx, second))
}

func TestPhotoWriteRepository_SetMain(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewPhotoWriteRepository(db)
	readRepo := NewPhotoReadRepository(db)
	ctx := context.Background()

	user := newTestUser("laura")
	require.NoError(t, userRepo.Save(ctx, user))

	old := &models.PhotoDB{
		PhotoID: uuid.New(),
		UserID:  user.UserID,
		URL:     "https://img.example.com/old.jpg",
		IsMain:  true,
		AddedAt: time.Now().UTC(),
	}
	next := &models.PhotoDB{
		PhotoID: uuid.New(),
		UserID:  user.UserID,
		URL:     "https://img.example.com/next.jpg",
		AddedAt: time.Now().UTC(),
	}
	require.NoError(t, writeRepo.Save(ctx, old))
	require.NoError(t, writeRepo.Save(ctx, next))

	t.Run("PromotesAndDemotes", func(t *testing.T) {
		err := writeRepo.SetMain(ctx, user.UserID, next.PhotoID)
		assert.NoError(t, err)

		got, err := readRepo.GetMainForUser(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, next.PhotoID, got.PhotoID)

		demoted, err := readRepo.GetByID(ctx, old.PhotoID)
		assert.NoError(t, err)
		assert.False(t, demoted.IsMain)
	})

	t.Run("ForeignPhotoRollsBack", func(t *testing.T) {
		err := writeRepo.SetMain(ctx, user.UserID, uuid.New())
		assert.Error(t, err)

		// The previous main photo survives the rolled back transaction.
		got, err := readRepo.GetMainForUser(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, next.PhotoID, got.PhotoID)
	})
}

func TestPhotoWriteRepository_SetMain_TransactionOrder(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewPhotoWriteRepository(db)

	userID := uuid.New()
	photoID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT photo_id FROM photos WHERE user_id = $1 FOR UPDATE")).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE photos SET is_main = FALSE WHERE user_id = $1 AND is_main")).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE photos SET is_main = TRUE WHERE photo_id = $1 AND user_id = $2")).
		WithArgs(photoID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.SetMain(context.Background(), userID, photoID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPhotoWriteRepository_Delete(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewPhotoWriteRepository(db)
	readRepo := NewPhotoReadRepository(db)
	ctx := context.Background()

	user := newTestUser("mallory")
	require.NoError(t, userRepo.Save(ctx, user))

	photo := &models.PhotoDB{
		PhotoID: uuid.New(),
		UserID:  user.UserID,
		URL:     "https://img.example.com/m.jpg",
		AddedAt: time.Now().UTC(),
	}
	require.NoError(t, writeRepo.Save(ctx, photo))

	t.Run("Success", func(t *testing.T) {
		err := writeRepo.Delete(ctx, photo.PhotoID)
		assert.NoError(t, err)

		got, err := readRepo.GetByID(ctx, photo.PhotoID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		err := writeRepo.Delete(ctx, uuid.New())
		assert.Error(t, err)
	})
}
