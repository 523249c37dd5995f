package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_VerifyRoundTrip(t *testing.T) {
	clock := &fakeClock{t: testNow}
	ts := newTokenService(time.Hour, clock.Now)

	token, err := ts.Issue("ana@example.com", "s")
	require.NoError(t, err)

	claims, err := ts.Verify(token.SignedString, "s")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	clock := &fakeClock{t: testNow}
	ts := newTokenService(time.Hour, clock.Now)

	token, err := ts.Issue("ana@example.com", "s")
	require.NoError(t, err)

	clock.t = testNow.Add(3599 * time.Second)
	_, err = ts.Verify(token.SignedString, "s")
	assert.NoError(t, err)

	clock.t = testNow.Add(3601 * time.Second)
	_, err = ts.Verify(token.SignedString, "s")
	assert.ErrorIs(t, err, ErrAuthExpired)
}

func TestTokenService_Errors(t *testing.T) {
	ts := newTokenService(time.Hour, nil)

	_, err := ts.Issue("", "s")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)

	token, err := ts.Issue("ana@example.com", "s")
	require.NoError(t, err)

	_, err = ts.Verify(token.SignedString, "other")
	assert.ErrorIs(t, err, ErrAuthInvalidSignature)

	_, err = ts.Verify("garbage", "s")
	assert.ErrorIs(t, err, ErrAuthMalformed)

	_, err = ts.DecodeUnverified("garbage")
	assert.ErrorIs(t, err, ErrAuthMalformed)

	unverified, err := ts.DecodeUnverified(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", unverified.Email)
}

func TestAuthError_IsMatchesKind(t *testing.T) {
	cause := errors.New("cause")
	err := NewAuthError(AuthExpired, cause)

	assert.ErrorIs(t, err, ErrAuthExpired)
	assert.NotErrorIs(t, err, ErrAuthMalformed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "expired")
	assert.Equal(t, "unknown_subject", AuthUnknownSubject.String())
}

func TestPasswordHasher(t *testing.T) {
	h := newPasswordHasher(4)

	digest, err := h.Hash("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", digest)

	ok, err := h.Verify("pw", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Verify("pw", "not-a-bcrypt-digest")
	assert.Error(t, err)
}
