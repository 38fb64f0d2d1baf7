package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/models"
	"github.com/sbilibin2017/dating-app/internal/password"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// TokenGenerator defines an interface for minting signed identity tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// EventWriter defines a Kafka writer abstraction for the activity stream.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
	events EventWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, events EventWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		events: events,
	}
}

// Register creates a new user with a salted password hash. The username is
// lowercased before the duplicate check and before storage.
func (svc *AuthService) Register(ctx context.Context, reg models.UserRegistration) (*models.UserDB, error) {
	username := strings.ToLower(reg.Username)

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("username already exists", "username", username)
		return nil, ErrUsernameTaken
	}

	hash, salt, err := password.Hash(reg.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	now := time.Now()
	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		PasswordHash: hash,
		PasswordSalt: salt,
		Gender:       reg.Gender,
		KnownAs:      reg.KnownAs,
		DateOfBirth:  reg.DateOfBirth,
		City:         reg.City,
		Country:      reg.Country,
		CreatedAt:    now,
		LastActive:   now,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.ActivityEvent{
		EventID:    uuid.New(),
		Type:       models.EventUserRegistered,
		UserID:     user.UserID,
		OccurredAt: now,
	})

	return user, nil
}

// Login authenticates a user and returns a token with a short user summary.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, plaintext string) (string, *models.UserSummary, error) {
	username = strings.ToLower(username)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("login failed", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if !password.Verify(plaintext, user.PasswordSalt, user.PasswordHash) {
		logger.Log.Errorw("login failed", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	summary := &models.UserSummary{
		ID:         user.UserID,
		Username:   user.Username,
		KnownAs:    user.KnownAs,
		Age:        user.Age(),
		Gender:     user.Gender,
		City:       user.City,
		Country:    user.Country,
		LastActive: user.LastActive,
	}

	return token, summary, nil
}

// publishEvent publishes an activity event to Kafka. Failures are logged
// and never fail the operation.
func (svc *AuthService) publishEvent(ctx context.Context, event models.ActivityEvent) {
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
