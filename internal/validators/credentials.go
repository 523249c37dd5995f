package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-softjobs/models"
)

// Field names accepted by CredentialsValidator.Validate.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// CredentialsValidator checks that register and login bodies carry a
// non-empty email and password. Whitespace-only values count as empty.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts models.Credentials, models.RegisterRequest and
// models.LoginRequest (values or pointers). Without fields both email and
// password are checked; every failing field is reported.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateCredentials(ctx, value.Credentials(), fields...)
	case *models.RegisterRequest:
		return v.validateCredentials(ctx, value.Credentials(), fields...)

	case models.LoginRequest:
		return v.validateCredentials(ctx, value.Credentials(), fields...)
	case *models.LoginRequest:
		return v.validateCredentials(ctx, value.Credentials(), fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldEmail:
			if creds.Email == "" {
				errs = append(errs, ErrEmptyEmail)
			}
		case FieldPassword:
			if creds.Password == "" {
				errs = append(errs, ErrEmptyPassword)
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}

	return errors.Join(errs...)
}
