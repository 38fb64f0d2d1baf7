package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, salt, err := Hash("secret123")
	assert.NoError(t, err)
	assert.Len(t, salt, saltLen)
	assert.Len(t, hash, keyLen)

	assert.True(t, Verify("secret123", salt, hash))
	assert.False(t, Verify("wrongpass", salt, hash))
	assert.False(t, Verify("", salt, hash))
}

func TestHash_UniqueSaltPerCall(t *testing.T) {
	hash1, salt1, err := Hash("secret123")
	assert.NoError(t, err)
	hash2, salt2, err := Hash("secret123")
	assert.NoError(t, err)

	// Same plaintext must not produce the same salt or hash twice.
	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestVerify_WrongSalt(t *testing.T) {
	hash, _, err := Hash("secret123")
	assert.NoError(t, err)

	otherSalt := make([]byte, saltLen)
	assert.False(t, Verify("secret123", otherSalt, hash))
}
