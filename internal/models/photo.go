package models

import (
	"time"

	"github.com/google/uuid"
)

// PhotoDB represents a photo record in the database.
// PublicID is empty for photos that were never uploaded to the external
// image store (e.g. seeded avatars).
type PhotoDB struct {
	PhotoID     uuid.UUID `db:"photo_id"` // Primary key
	UserID      uuid.UUID `db:"user_id"`  // Owning user
	URL         string    `db:"url"`
	PublicID    string    `db:"public_id"`
	Description string    `db:"description"`
	IsMain      bool      `db:"is_main"`
	AddedAt     time.Time `db:"added_at"`
}

// PhotoSummary is the public form of a photo.
type PhotoSummary struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	IsMain      bool      `json:"is_main"`
	AddedAt     time.Time `json:"added_at"`
}

// Summary converts a database photo row to its public form.
func (p *PhotoDB) Summary() PhotoSummary {
	return PhotoSummary{
		ID:          p.PhotoID,
		URL:         p.URL,
		Description: p.Description,
		IsMain:      p.IsMain,
		AddedAt:     p.AddedAt,
	}
}
