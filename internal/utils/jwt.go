package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-softjobs/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token failures reported by ValidateAndParseJWTToken and
// ParseUnverifiedJWTToken. The jwt library error is joined to them.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// Authorization header failures reported by ParseBearerToken.
var (
	ErrAuthorizationHeaderMissing = errors.New("authorization header is missing")
	ErrAuthorizationHeaderInvalid = errors.New("authorization header is not a bearer token")
)

const bearerScheme = "Bearer"

// GenerateJWTToken signs an HS256 token for email with signKey.
//
// The payload carries the email claim, sub (also the email), iat = issuedAt
// and exp = issuedAt + tokenDuration. Every parameter is required.
//
//	token, err := utils.GenerateJWTToken("ana@example.com", time.Now(), time.Hour, secret)
func GenerateJWTToken(email string, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if email == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	// JWT numeric dates have second precision
	issuedAt = issuedAt.Truncate(time.Second)
	expiresAt := issuedAt.Add(tokenDuration)

	claims := &models.TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, IssuedAt: issuedAt, ExpiresAt: expiresAt}, nil
}

// ValidateAndParseJWTToken verifies tokenString against signKey at the
// instant now and returns its claims.
//
// Only HS256 is accepted and exp is required. The signature is checked
// before the expiry, so a token signed with another key reports
// ErrTokenSignatureInvalid even when it is also expired.
func ValidateAndParseJWTToken(tokenString, signKey string, now time.Time) (models.VerifiedClaims, error) {
	if signKey == "" {
		return models.VerifiedClaims{}, fmt.Errorf("%w: empty verification key", ErrTokenSignatureInvalid)
	}

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.VerifiedClaims{}, classifyJWTError(err)
	}

	if claims.Email == "" {
		return models.VerifiedClaims{}, fmt.Errorf("%w: no email claim", ErrTokenMalformed)
	}

	verified := models.VerifiedClaims{Email: claims.Email}
	if claims.IssuedAt != nil {
		verified.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		verified.ExpiresAt = claims.ExpiresAt.Time
	}

	return verified, nil
}

// ParseUnverifiedJWTToken reads the email claim without checking the
// signature. The result only selects a verification key.
func ParseUnverifiedJWTToken(tokenString string) (models.UnverifiedClaims, error) {
	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.UnverifiedClaims{}, errors.Join(ErrTokenMalformed, err)
	}

	if claims.Email == "" {
		return models.UnverifiedClaims{}, fmt.Errorf("%w: no email claim", ErrTokenMalformed)
	}

	return models.UnverifiedClaims{Email: claims.Email}, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the exact form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return "", ErrAuthorizationHeaderMissing
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != bearerScheme || parts[1] == "" {
		return "", ErrAuthorizationHeaderInvalid
	}

	return parts[1], nil
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Join(ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Join(ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired),
		errors.Is(err, jwt.ErrTokenNotValidYet):
		return errors.Join(ErrTokenExpired, err)
	default:
		return errors.Join(ErrTokenMalformed, err)
	}
}
