package models

import (
	"time"

	"github.com/google/uuid"
)

// Event types published to the activity stream.
const (
	EventUserRegistered   = "user_registered"
	EventPhotoAdded       = "photo_added"
	EventMainPhotoChanged = "main_photo_changed"
	EventPhotoDeleted     = "photo_deleted"
)

// ActivityEvent is the payload published to the activity stream after
// registrations and photo mutations.
type ActivityEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Type       string    `json:"type"`
	UserID     uuid.UUID `json:"user_id"`
	PhotoID    uuid.UUID `json:"photo_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
