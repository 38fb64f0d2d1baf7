package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Username     string    `db:"username"`      // Unique username, stored lowercase
	PasswordHash []byte    `db:"password_hash"` // Salted password hash
	PasswordSalt []byte    `db:"password_salt"` // Per-user random salt
	Gender       string    `db:"gender"`
	KnownAs      string    `db:"known_as"`
	DateOfBirth  time.Time `db:"date_of_birth"`
	City         string    `db:"city"`
	Country      string    `db:"country"`
	Introduction string    `db:"introduction"`
	LookingFor   string    `db:"looking_for"`
	Interests    string    `db:"interests"`
	CreatedAt    time.Time `db:"created_at"`
	LastActive   time.Time `db:"last_active"`
}

// Age returns the user's age in full years based on the date of birth.
func (u *UserDB) Age() int {
	now := time.Now()
	age := now.Year() - u.DateOfBirth.Year()
	if now.YearDay() < u.DateOfBirth.YearDay() {
		age--
	}
	return age
}

// UserListItem is a user row joined with the URL of its main photo,
// as returned by the list query.
type UserListItem struct {
	UserDB
	MainPhotoURL string `db:"main_photo_url"`
}

// UserSummary is the public short form of a user, returned by login
// and by the user list endpoint.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	KnownAs      string    `json:"known_as"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	MainPhotoURL string    `json:"main_photo_url,omitempty"`
	LastActive   time.Time `json:"last_active"`
}

// UserDetail is the full public form of a user with the photo
// collection pre-loaded.
type UserDetail struct {
	ID           uuid.UUID      `json:"id"`
	Username     string         `json:"username"`
	KnownAs      string         `json:"known_as"`
	Age          int            `json:"age"`
	Gender       string         `json:"gender"`
	City         string         `json:"city"`
	Country      string         `json:"country"`
	Introduction string         `json:"introduction,omitempty"`
	LookingFor   string         `json:"looking_for,omitempty"`
	Interests    string         `json:"interests,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	LastActive   time.Time      `json:"last_active"`
	Photos       []PhotoSummary `json:"photos"`
}

// UserRegistration carries the fields accepted at registration.
type UserRegistration struct {
	Username    string
	Password    string
	Gender      string
	KnownAs     string
	DateOfBirth time.Time
	City        string
	Country     string
}

// ProfileUpdate carries the user-editable profile fields.
type ProfileUpdate struct {
	Introduction string
	LookingFor   string
	Interests    string
	City         string
	Country      string
}
