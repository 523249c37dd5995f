package store

import (
	"context"

	"github.com/MKhiriev/go-softjobs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: user records keyed by email
// together with their password digests and signing secrets.
type UserRepository interface {
	// ExistsByEmail reports whether a user with exactly this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CreateUser inserts user and returns it with the store-assigned ID.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the full record including credentials.
	// An unknown email yields ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindProfilesByEmail returns the public fields of every record with
	// this email. The result may be empty.
	FindProfilesByEmail(ctx context.Context, email string) ([]models.User, error)

	// SetSigningSecretIfAbsent stores secret for the user unless one is
	// already set, and returns the secret stored after the call.
	SetSigningSecretIfAbsent(ctx context.Context, userID int64, secret string) (string, error)
}
