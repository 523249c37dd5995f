// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-softjobs/internal/config"
	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/store"
	"github.com/MKhiriev/go-softjobs/internal/utils"
	"github.com/MKhiriev/go-softjobs/internal/validators"
	"github.com/MKhiriev/go-softjobs/models"
)

// authService is the concrete implementation of AuthService.
//
// Every user signs with an own secret: tokens are issued with the secret
// stored on the account and verified against the secret of the email they
// claim.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	hasher         PasswordHasher
	tokens         TokenIssuer
	secrets        SecretProvisioner

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over userRepository using the
// token and hashing parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return newAuthService(userRepository, cfg, time.Now, logger)
}

func newAuthService(userRepository store.UserRepository, cfg config.App, now func() time.Time, logger *logger.Logger) *authService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		hasher:         newPasswordHasher(cfg.PasswordHashCost),
		tokens:         newTokenService(cfg.TokenDuration, now),
		secrets:        newSecretService(userRepository, cfg.TokenSignKey),
		logger:         logger,
	}
}

// Register creates a user with a fresh signing secret and returns it along
// with its first token.
//
// Errors:
//   - ErrInvalidDataProvided for an empty email or password.
//   - ErrEmailAlreadyRegistered when the email is taken, including when a
//     concurrent registration wins the insert.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid registration data")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := a.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		log.Info().Msg("registration rejected: email already registered")
		return models.User{}, models.Token{}, ErrEmailAlreadyRegistered
	}

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	secret, err := a.secrets.Generate()
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:              req.Email,
		PasswordHash:       digest,
		Role:               req.Role,
		LanguagePreference: req.LanguagePreference,
		SigningSecret:      secret,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Msg("registration rejected: email registered concurrently")
		return models.User{}, models.Token{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.tokens.Issue(user.Email, secret)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().
		Int64("user_id", user.ID).
		Str("secret_fp", utils.Fingerprint(secret)).
		Msg("user registered")
	return user, token, nil
}

// Login returns a token for valid credentials. Unknown email and wrong
// password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Msg("login failed: unknown email")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return models.Token{}, err
	}
	if !ok {
		log.Info().Int64("user_id", user.ID).Msg("login failed: wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	secret, err := a.secrets.EnsureSecret(ctx, user)
	if err != nil {
		return models.Token{}, err
	}

	return a.tokens.Issue(user.Email, secret)
}

// Authenticate selects the verification key from the claimed email, then
// verifies the token with it. The unverified email is never returned.
func (a *authService) Authenticate(ctx context.Context, token string) (models.VerifiedClaims, error) {
	if token == "" {
		return models.VerifiedClaims{}, NewAuthError(AuthMissing, nil)
	}

	unverified, err := a.tokens.DecodeUnverified(token)
	if err != nil {
		return models.VerifiedClaims{}, err
	}

	secret, err := a.secrets.ResolveSecret(ctx, unverified.Email)
	if err != nil {
		return models.VerifiedClaims{}, err
	}

	return a.tokens.Verify(token, secret)
}

func (a *authService) Profile(ctx context.Context, email string) ([]models.User, error) {
	if email == "" {
		return nil, ErrInvalidDataProvided
	}

	profiles, err := a.userRepository.FindProfilesByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profiles, nil
}
