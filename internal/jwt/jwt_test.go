package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	// Extract claims
	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_MissingSecretKey(t *testing.T) {
	j := New("", time.Minute)
	ctx := context.Background()

	_, err := j.Generate(ctx, uuid.New(), "alice")
	assert.ErrorIs(t, err, ErrNoSecretKey)

	err = j.Validate(ctx, "whatever")
	assert.ErrorIs(t, err, ErrNoSecretKey)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.Error(t, err)
}

func TestJWT_WrongKey(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-one", time.Minute).Generate(ctx, uuid.New(), "alice")
	assert.NoError(t, err)

	err = New("secret-two", time.Minute).Validate(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase bearer", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, token)
			}
		})
	}
}
