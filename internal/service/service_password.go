package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the part of a password bcrypt reads.
const maxPasswordBytes = 72

// passwordHasher hashes passwords with bcrypt at a fixed cost.
//
// Only the first 72 bytes of a password take part in hashing and
// verification, the same input digests from other bcrypt implementations
// were computed over.
type passwordHasher struct {
	cost int
}

func newPasswordHasher(cost int) *passwordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &passwordHasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext.
func (h *passwordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(bcryptInput(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is not an error.
func (h *passwordHasher) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), bcryptInput(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error verifying password: %w", err)
	}
}

func bcryptInput(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
