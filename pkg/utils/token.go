package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateAccessToken returns a 64-character hex token from 32 random bytes.
// Tokens are bearer credentials for external signers, so they come from
// crypto/rand, never from a seeded PRNG.
func GenerateAccessToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
