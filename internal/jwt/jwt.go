package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrNoSecretKey is returned when the signing key is absent or empty.
	ErrNoSecretKey = errors.New("jwt secret key is not configured")
	// ErrInvalidToken is returned for tokens that fail signature, expiry or claim checks.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the identity embedded in a token.
type Claims struct {
	UserID   uuid.UUID
	Username string
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token carrying the user id and username.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, username string) (string, error) {
	if j.SecretKey == "" {
		return "", ErrNoSecretKey
	}

	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(j.Exp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns its claims if the
// signature and expiry are valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	if j.SecretKey == "" {
		return nil, ErrNoSecretKey
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return &Claims{UserID: userID, Username: username}, nil
}

// Validate checks the token signature and expiry.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
