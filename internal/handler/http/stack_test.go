package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-softjobs/internal/config"
	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/service"
	"github.com/MKhiriev/go-softjobs/internal/store"
	"github.com/MKhiriev/go-softjobs/models"
)

// newStackRouter wires the router to the real services over in-memory SQLite.
func newStackRouter(t *testing.T) (http.Handler, *store.Storages) {
	t.Helper()
	storages, err := store.NewStorages(context.Background(), config.Storage{
		DB: config.DB{DSN: "sqlite://:memory:"},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := service.NewServices(storages, config.App{
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}, logger.Nop())

	return NewHandler(services, config.Server{}, logger.Nop()).Init(), storages
}

func registerAndLogin(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()
	creds := map[string]string{"email": email, "password": password}

	rec := doRequest(t, router, http.MethodPost, "/users", creds, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/login", creds, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestStack_RegisterLoginProfile(t *testing.T) {
	router, _ := newStackRouter(t)
	token := registerAndLogin(t, router, "ana@example.com", "pw")

	rec := doRequest(t, router, http.MethodGet, "/users", nil, map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "ana@example.com", users[0].Email)
}

func TestStack_PasswordsAcceptedAsGiven(t *testing.T) {
	for name, password := range map[string]string{
		"longer than 72 bytes": strings.Repeat("x", 73),
		"whitespace only":      "   ",
	} {
		t.Run(name, func(t *testing.T) {
			router, _ := newStackRouter(t)
			assert.NotEmpty(t, registerAndLogin(t, router, "user@example.com", password))
		})
	}
}

func TestStack_TokenWithSubjectButNoEmailClaim(t *testing.T) {
	router, storages := newStackRouter(t)
	registerAndLogin(t, router, "a@b.c", "pw")

	user, err := storages.UserRepository.FindUserByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.NotEmpty(t, user.SigningSecret)

	now := time.Now()
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "a@b.c",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(user.SigningSecret))
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/users", nil, map[string]string{"Authorization": "Bearer " + forged})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgInvalidToken, decodeMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "a@b.c")
}
