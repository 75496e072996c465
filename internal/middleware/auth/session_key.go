package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// MinSessionKeyBytes is the smallest accepted amount of randomness for a session key.
const MinSessionKeyBytes = 8

// GenerateSessionKey returns n random bytes encoded as hex (2n characters).
func GenerateSessionKey(n int) (string, error) {
	if n < MinSessionKeyBytes {
		return "", fmt.Errorf("auth: session key needs at least %d bytes, got %d", MinSessionKeyBytes, n)
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
