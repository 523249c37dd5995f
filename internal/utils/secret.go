package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// SecretSize is the number of random bytes in a signing secret.
const SecretSize = 32

// GenerateSecret returns SecretSize bytes from crypto/rand, hex encoded.
func GenerateSecret() (string, error) {
	b := make([]byte, SecretSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating secret: %w", err)
	}

	return hex.EncodeToString(b), nil
}

// Fingerprint returns the first 8 bytes of the SHA-256 of secret in hex.
// It identifies a secret in logs without revealing it.
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:8])
}
