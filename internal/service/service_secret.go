package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/store"
	"github.com/MKhiriev/go-softjobs/internal/utils"
	"github.com/MKhiriev/go-softjobs/models"
)

// secretService provisions and resolves per-user signing secrets.
//
// fallbackKey, when non-empty, signs for users whose secret is missing and
// could not be stored. generate produces new secrets.
type secretService struct {
	userRepository store.UserRepository
	fallbackKey    string
	generate       func() (string, error)
}

func newSecretService(userRepository store.UserRepository, fallbackKey string) *secretService {
	return &secretService{
		userRepository: userRepository,
		fallbackKey:    fallbackKey,
		generate:       utils.GenerateSecret,
	}
}

func (s *secretService) Generate() (string, error) {
	secret, err := s.generate()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSecretProvisioningFailed, err)
	}
	return secret, nil
}

// EnsureSecret returns the user's signing secret, provisioning one when the
// record has none. An existing secret is never replaced.
func (s *secretService) EnsureSecret(ctx context.Context, user models.User) (string, error) {
	if user.HasSigningSecret() {
		return user.SigningSecret, nil
	}

	log := logger.FromContext(ctx)

	secret, err := s.Generate()
	if err == nil {
		secret, err = s.userRepository.SetSigningSecretIfAbsent(ctx, user.ID, secret)
	}
	if err != nil {
		if s.fallbackKey != "" {
			log.Warn().Err(err).
				Int64("user_id", user.ID).
				Msg("signing secret not provisioned, using fallback key")
			return s.fallbackKey, nil
		}
		log.Err(err).Int64("user_id", user.ID).Msg("signing secret not provisioned")
		return "", fmt.Errorf("%w: %w", ErrSecretProvisioningFailed, err)
	}

	log.Info().
		Int64("user_id", user.ID).
		Str("secret_fp", utils.Fingerprint(secret)).
		Msg("signing secret provisioned")
	return secret, nil
}

// ResolveSecret returns the key that must verify tokens claiming email.
func (s *secretService) ResolveSecret(ctx context.Context, email string) (string, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return "", NewAuthError(AuthUnknownSubject, err)
	}
	if err != nil {
		return "", fmt.Errorf("error resolving signing secret: %w", err)
	}

	if user.HasSigningSecret() {
		return user.SigningSecret, nil
	}
	if s.fallbackKey != "" {
		return s.fallbackKey, nil
	}

	return "", NewAuthError(AuthInvalidSignature, errors.New("subject has no signing secret"))
}
