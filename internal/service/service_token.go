package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-softjobs/internal/utils"
	"github.com/MKhiriev/go-softjobs/models"
)

// tokenService issues and verifies HS256 tokens against a caller-supplied
// secret. now is the clock used for iat and for expiry checks.
type tokenService struct {
	duration time.Duration
	now      func() time.Time
}

func newTokenService(duration time.Duration, now func() time.Time) *tokenService {
	if now == nil {
		now = time.Now
	}
	return &tokenService{duration: duration, now: now}
}

func (s *tokenService) Issue(email, secret string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(email, s.now(), s.duration, secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks the signature with secret, then the expiry.
func (s *tokenService) Verify(token, secret string) (models.VerifiedClaims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, secret, s.now())
	if err == nil {
		return claims, nil
	}

	switch {
	case errors.Is(err, utils.ErrTokenSignatureInvalid):
		return models.VerifiedClaims{}, NewAuthError(AuthInvalidSignature, err)
	case errors.Is(err, utils.ErrTokenExpired):
		return models.VerifiedClaims{}, NewAuthError(AuthExpired, err)
	default:
		return models.VerifiedClaims{}, NewAuthError(AuthMalformed, err)
	}
}

// DecodeUnverified reads the email claim without checking the signature.
func (s *tokenService) DecodeUnverified(token string) (models.UnverifiedClaims, error) {
	claims, err := utils.ParseUnverifiedJWTToken(token)
	if err != nil {
		return models.UnverifiedClaims{}, NewAuthError(AuthMalformed, err)
	}

	return claims, nil
}
