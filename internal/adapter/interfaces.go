// Package adapter is the client side of the auth service HTTP API.
//
// [ServerAdapter] hides the transport from the CLI. Error values in
// errors.go are mapped from HTTP status codes by mapHTTPError, so callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-softjobs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the auth service on behalf of a single caller.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Profile returns the user records of the token's subject.
	Profile(ctx context.Context) ([]models.User, error)
}
