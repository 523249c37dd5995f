package service

import (
	"context"

	"github.com/MKhiriev/go-softjobs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the authentication flow used by the HTTP layer.
type AuthService interface {
	// Register creates the account and returns it with a token signed by
	// the new user's secret.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)

	// Login checks the credentials and returns a token signed by the user's
	// secret, provisioning the secret when the account has none.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// Authenticate verifies a raw token against its subject's secret.
	// Every rejection is an *AuthError.
	Authenticate(ctx context.Context, token string) (models.VerifiedClaims, error)

	// Profile returns the user records matching email.
	Profile(ctx context.Context, email string) ([]models.User, error)
}

// PasswordHasher turns passwords into digests and checks them.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}

// TokenIssuer signs and verifies tokens with a given secret.
type TokenIssuer interface {
	Issue(email, secret string) (models.Token, error)
	Verify(token, secret string) (models.VerifiedClaims, error)
	DecodeUnverified(token string) (models.UnverifiedClaims, error)
}

// SecretProvisioner owns the per-user signing secrets.
type SecretProvisioner interface {
	Generate() (string, error)
	EnsureSecret(ctx context.Context, user models.User) (string, error)
	ResolveSecret(ctx context.Context, email string) (string, error)
}
