package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-softjobs/internal/config"
	"github.com/MKhiriev/go-softjobs/internal/service"
	"github.com/MKhiriev/go-softjobs/internal/store"
	"github.com/MKhiriev/go-softjobs/models"
)

func TestRegister_Created(t *testing.T) {
	router, auth := newTestRouter(t, config.Server{})
	role := "admin"

	auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{Email: "ana@example.com", Password: "pw", Role: &role}).
		Return(models.User{
			ID:            1,
			Email:         "ana@example.com",
			PasswordHash:  "digest",
			Role:          &role,
			SigningSecret: "secret",
		}, stubToken("a.b.c"), nil)

	rec := doRequest(t, router, http.MethodPost, "/users",
		map[string]any{"email": "ana@example.com", "password": "pw", "role": "admin"}, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"user":{"id":1,"email":"ana@example.com","role":"admin","languagePreference":null},"token":"a.b.c"}`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRegister_MissingCredentials(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	for _, body := range []any{
		map[string]string{"email": "ana@example.com"},
		map[string]string{"password": "pw"},
		map[string]string{"email": "", "password": ""},
	} {
		rec := doRequest(t, router, http.MethodPost, "/users", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgCredentialsRequired, decodeMessage(t, rec))
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	rec := doRequest(t, router, http.MethodPost, "/users", "{not json", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidJSON, decodeMessage(t, rec))
}

func TestRegister_Conflict(t *testing.T) {
	router, auth := newTestRouter(t, config.Server{})

	auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, models.Token{}, service.ErrEmailAlreadyRegistered)

	rec := doRequest(t, router, http.MethodPost, "/users",
		map[string]string{"email": "ana@example.com", "password": "pw"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, msgEmailRegistered, decodeMessage(t, rec))
}

func TestRegister_InternalErrorHidesDetails(t *testing.T) {
	router, auth := newTestRouter(t, config.Server{})

	auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, models.Token{}, errors.New("pq: connection refused at 10.0.0.5"))

	rec := doRequest(t, router, http.MethodPost, "/users",
		map[string]string{"email": "ana@example.com", "password": "pw"}, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternalError, decodeMessage(t, rec))
}

func TestProfile_ReturnsRecordsOfVerifiedEmail(t *testing.T) {
	router, auth := newTestRouter(t, config.Server{})
	lang := "es"

	gomock.InOrder(
		auth.EXPECT().Authenticate(gomock.Any(), "a.b.c").
			Return(models.VerifiedClaims{Email: "ana@example.com"}, nil),
		auth.EXPECT().Profile(gomock.Any(), "ana@example.com").
			DoAndReturn(func(ctx context.Context, email string) ([]models.User, error) {
				return []models.User{{ID: 1, Email: email, LanguagePreference: &lang}}, nil
			}),
	)

	rec := doRequest(t, router, http.MethodGet, "/users", nil, map[string]string{"Authorization": "Bearer a.b.c"})
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "ana@example.com", users[0].Email)
	assert.Equal(t, "es", *users[0].LanguagePreference)
}

func TestProfile_StoreFailure(t *testing.T) {
	router, auth := newTestRouter(t, config.Server{})

	auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		Return(models.VerifiedClaims{Email: "ana@example.com"}, nil)
	auth.EXPECT().Profile(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	rec := doRequest(t, router, http.MethodGet, "/users", nil, map[string]string{"Authorization": "Bearer a.b.c"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
