package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrNotOwner        = errors.New("subject does not own the resource")
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrAlreadyMain     = errors.New("photo is already the main photo")
	ErrMainPhotoDelete = errors.New("cannot delete the main photo")
	ErrUploadFailed    = errors.New("image upload failed")
)

// PhotoReader defines read-only operations for photos.
type PhotoReader interface {
	GetByID(ctx context.Context, photoID uuid.UUID) (*models.PhotoDB, error)
	GetMainForUser(ctx context.Context, userID uuid.UUID) (*models.PhotoDB, error)
}

// PhotoWriter defines write operations for photos.
type PhotoWriter interface {
	Save(ctx context.Context, photo *models.PhotoDB) error
	SetMain(ctx context.Context, userID, photoID uuid.UUID) error
	Delete(ctx context.Context, photoID uuid.UUID) error
}

// ImageStore defines the external image-hosting collaborator.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (url, publicID string, err error)
	Delete(ctx context.Context, publicID string) error
}

// ProfileCacheInvalidator drops cached user details after mutations.
type ProfileCacheInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// PhotoService handles the photo ownership workflow: add, set-main, delete.
type PhotoService struct {
	reader PhotoReader
	writer PhotoWriter
	images ImageStore
	cache  ProfileCacheInvalidator
	events EventWriter
}

// NewPhotoService creates a new PhotoService instance.
func NewPhotoService(reader PhotoReader, writer PhotoWriter, images ImageStore, cache ProfileCacheInvalidator, events EventWriter) *PhotoService {
	return &PhotoService{
		reader: reader,
		writer: writer,
		images: images,
		cache:  cache,
		events: events,
	}
}

// authorizeOwner is the ownership predicate applied before every mutating
// operation: the authenticated subject must be the owning user.
func authorizeOwner(subjectID, ownerID uuid.UUID) error {
	if subjectID != ownerID {
		return ErrNotOwner
	}
	return nil
}

// Get returns a single photo by id.
func (svc *PhotoService) Get(ctx context.Context, photoID uuid.UUID) (*models.PhotoDB, error) {
	photo, err := svc.reader.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photo_id", photoID, "err", err)
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}

// Add uploads the image to the external store and records the photo. A
// user's first photo (no current main) automatically becomes the main photo.
func (svc *PhotoService) Add(ctx context.Context, subjectID, userID uuid.UUID, data []byte, contentType, description string) (*models.PhotoDB, error) {
	if err := authorizeOwner(subjectID, userID); err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, ErrUploadFailed
	}

	url, publicID, err := svc.images.Upload(ctx, data, contentType)
	if err != nil {
		logger.Log.Errorw("image store rejected upload", "user_id", userID, "err", err)
		return nil, ErrUploadFailed
	}

	main, err := svc.reader.GetMainForUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get main photo", "user_id", userID, "err", err)
		return nil, err
	}

	photo := &models.PhotoDB{
		PhotoID:     uuid.New(),
		UserID:      userID,
		URL:         url,
		PublicID:    publicID,
		Description: description,
		IsMain:      main == nil,
		AddedAt:     time.Now(),
	}

	if err := svc.writer.Save(ctx, photo); err != nil {
		logger.Log.Errorw("failed to save photo", "user_id", userID, "err", err)
		return nil, err
	}

	svc.invalidateProfile(ctx, userID)
	svc.publishEvent(ctx, models.ActivityEvent{
		EventID:    uuid.New(),
		Type:       models.EventPhotoAdded,
		UserID:     userID,
		PhotoID:    photo.PhotoID,
		OccurredAt: photo.AddedAt,
	})

	return photo, nil
}

// SetMain makes the target photo the user's main photo. The previous main
// photo is cleared in the same transaction.
func (svc *PhotoService) SetMain(ctx context.Context, subjectID, userID, photoID uuid.UUID) error {
	photo, err := svc.authorizePhoto(ctx, subjectID, userID, photoID)
	if err != nil {
		return err
	}

	if photo.IsMain {
		return ErrAlreadyMain
	}

	if err := svc.writer.SetMain(ctx, userID, photoID); err != nil {
		logger.Log.Errorw("failed to set main photo", "photo_id", photoID, "err", err)
		return err
	}

	svc.invalidateProfile(ctx, userID)
	svc.publishEvent(ctx, models.ActivityEvent{
		EventID:    uuid.New(),
		Type:       models.EventMainPhotoChanged,
		UserID:     userID,
		PhotoID:    photoID,
		OccurredAt: time.Now(),
	})

	return nil
}

// Delete removes a non-main photo. The external image is deleted first by
// its public id; the local record is only removed once the store confirms.
// Photos without a public id (never uploaded externally) skip the external
// call.
func (svc *PhotoService) Delete(ctx context.Context, subjectID, userID, photoID uuid.UUID) error {
	photo, err := svc.authorizePhoto(ctx, subjectID, userID, photoID)
	if err != nil {
		return err
	}

	if photo.IsMain {
		return ErrMainPhotoDelete
	}

	if photo.PublicID != "" {
		if err := svc.images.Delete(ctx, photo.PublicID); err != nil {
			logger.Log.Errorw("image store rejected deletion", "photo_id", photoID, "err", err)
			return err
		}
	}

	if err := svc.writer.Delete(ctx, photoID); err != nil {
		logger.Log.Errorw("failed to delete photo", "photo_id", photoID, "err", err)
		return err
	}

	svc.invalidateProfile(ctx, userID)
	svc.publishEvent(ctx, models.ActivityEvent{
		EventID:    uuid.New(),
		Type:       models.EventPhotoDeleted,
		UserID:     userID,
		PhotoID:    photoID,
		OccurredAt: time.Now(),
	})

	return nil
}

// authorizePhoto checks that the subject is the path user and that the
// target photo belongs to that user's own photo collection. A photo id
// referencing another user's photo is denied, not reported as missing.
func (svc *PhotoService) authorizePhoto(ctx context.Context, subjectID, userID, photoID uuid.UUID) (*models.PhotoDB, error) {
	if err := authorizeOwner(subjectID, userID); err != nil {
		return nil, err
	}

	photo, err := svc.reader.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photo_id", photoID, "err", err)
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	if photo.UserID != userID {
		return nil, ErrNotOwner
	}

	return photo, nil
}

func (svc *PhotoService) invalidateProfile(ctx context.Context, userID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate cached profile", "user_id", userID, "err", err)
	}
}

// publishEvent publishes an activity event to Kafka. Failures are logged
// and never fail the operation.
func (svc *PhotoService) publishEvent(ctx context.Context, event models.ActivityEvent) {
	if svc.events == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: value,
	}
	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity event", "event_id", event.EventID, "err", err)
	}
}
