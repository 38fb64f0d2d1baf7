// Package password implements salted password hashing for the credential
// store. Each user gets a random salt; the hash is PBKDF2-HMAC-SHA512 keyed
// by that salt, and verification recomputes the hash and compares it in
// constant time.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	keyLen     = 64
	iterations = 120_000
)

// Hash generates a fresh salt and computes the salted hash of plaintext.
func Hash(plaintext string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}
	hash = pbkdf2.Key([]byte(plaintext), salt, iterations, keyLen, sha512.New)
	return hash, salt, nil
}

// Verify recomputes the hash of plaintext with the stored salt and compares
// it to the stored hash in constant time.
func Verify(plaintext string, salt, hash []byte) bool {
	computed := pbkdf2.Key([]byte(plaintext), salt, iterations, keyLen, sha512.New)
	return subtle.ConstantTimeCompare(computed, hash) == 1
}
