package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT payload issued by the service.
//
// Email identifies the subject; the registered claims carry iat and exp.
type TokenClaims struct {
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token is a freshly issued, signed token.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// IssuedAt and ExpiresAt mirror the iat and exp claims.
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// UnverifiedClaims holds what could be read from a token payload without
// checking its signature. It is only good for choosing the verification key
// and must never be used as an identity.
type UnverifiedClaims struct {
	Email string
}

// VerifiedClaims holds the claims of a token whose signature and expiry have
// been checked against the subject's signing secret.
type VerifiedClaims struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
