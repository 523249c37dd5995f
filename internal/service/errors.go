package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided marks a request rejected by input validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrEmailAlreadyRegistered is returned by Register for a taken email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned by Login for an unknown email and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed      = errors.New("token creation failed")
	ErrSecretProvisioningFailed = errors.New("signing secret provisioning failed")
)

// AuthErrorKind tells why a token was rejected.
type AuthErrorKind int

const (
	AuthMissing AuthErrorKind = iota + 1
	AuthMalformed
	AuthInvalidSignature
	AuthExpired
	AuthUnknownSubject
)

func (k AuthErrorKind) String() string {
	switch k {
	case AuthMissing:
		return "missing"
	case AuthMalformed:
		return "malformed"
	case AuthInvalidSignature:
		return "invalid_signature"
	case AuthExpired:
		return "expired"
	case AuthUnknownSubject:
		return "unknown_subject"
	default:
		return "unknown"
	}
}

// AuthError is a token rejection. Two AuthErrors match with errors.Is when
// their kinds are equal, so the Err* values below can be used as targets.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

// Sentinel targets for errors.Is.
var (
	ErrAuthMissing          = &AuthError{Kind: AuthMissing}
	ErrAuthMalformed        = &AuthError{Kind: AuthMalformed}
	ErrAuthInvalidSignature = &AuthError{Kind: AuthInvalidSignature}
	ErrAuthExpired          = &AuthError{Kind: AuthExpired}
	ErrAuthUnknownSubject   = &AuthError{Kind: AuthUnknownSubject}
)

// NewAuthError returns an AuthError of kind wrapping cause.
func NewAuthError(kind AuthErrorKind, cause error) *AuthError {
	return &AuthError{Kind: kind, Err: cause}
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("authentication failed: %s", e.Kind)
	}
	return fmt.Sprintf("authentication failed: %s: %v", e.Kind, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) Is(target error) bool {
	var t *AuthError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}
