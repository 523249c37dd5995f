package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-softjobs/internal/adapter"
	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/mock"
	"github.com/MKhiriev/go-softjobs/models"
)

func newTestApp(t *testing.T, opts ...Option) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	out := &bytes.Buffer{}
	opts = append([]Option{WithJSONOutput(true)}, opts...)
	return NewApp(server, out, logger.Nop(), opts...), server, out
}

func TestRun_NoCommand(t *testing.T) {
	app, _, _ := newTestApp(t)
	require.ErrorIs(t, app.Run(context.Background(), nil), ErrNoCommand)
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)
	require.ErrorIs(t, app.Run(context.Background(), []string{"delete"}), ErrUnknownCommand)
}

func TestRegister_PassesOptionalFields(t *testing.T) {
	app, server, out := newTestApp(t)
	role := "admin"

	server.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Email:    "ana@example.com",
		Password: "pw",
		Role:     &role,
	}).Return(models.RegisterResponse{User: models.User{ID: 1, Email: "ana@example.com"}, Token: "a.b.c"}, nil)

	err := app.Run(context.Background(), []string{"register", "-email", "ana@example.com", "-password", "pw", "-role", "admin"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"token": "a.b.c"`)
}

func TestRegister_MissingFlags(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"register", "-email", "ana@example.com"})
	require.ErrorIs(t, err, ErrMissingFlag)
	assert.Contains(t, err.Error(), "-password")
}

func TestLogin_PropagatesServerError(t *testing.T) {
	app, server, out := newTestApp(t)

	server.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ana@example.com", Password: "nope"}).
		Return(models.LoginResponse{}, adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"login", "-email", "ana@example.com", "-password", "nope"})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, out.String())
}

func TestProfile_UsesGivenToken(t *testing.T) {
	app, server, out := newTestApp(t)

	gomock.InOrder(
		server.EXPECT().SetToken("a.b.c"),
		server.EXPECT().Profile(gomock.Any()).Return([]models.User{{ID: 1, Email: "ana@example.com"}}, nil),
	)

	require.NoError(t, app.Run(context.Background(), []string{"profile", "-token", "a.b.c"}))
	assert.Contains(t, out.String(), "ana@example.com")
}

func TestWhoami_LogsInThenFetchesProfile(t *testing.T) {
	app, server, out := newTestApp(t)

	gomock.InOrder(
		server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{Token: "a.b.c"}, nil),
		server.EXPECT().Profile(gomock.Any()).Return([]models.User{{ID: 1, Email: "ana@example.com"}}, nil),
	)

	require.NoError(t, app.Run(context.Background(), []string{"whoami", "-email", "ana@example.com", "-password", "pw"}))
	assert.Contains(t, out.String(), `"id": 1`)
}

func TestLogin_CopyToClipboard(t *testing.T) {
	var copied string
	app, server, _ := newTestApp(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{Token: "a.b.c"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"login", "-email", "ana@example.com", "-password", "pw", "-copy"}))
	assert.Equal(t, "a.b.c", copied)
}

func TestLogin_ClipboardFailure(t *testing.T) {
	app, server, _ := newTestApp(t, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))

	server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{Token: "a.b.c"}, nil)

	err := app.Run(context.Background(), []string{"login", "-email", "ana@example.com", "-password", "pw", "-copy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy to clipboard")
}

func TestPrint_TextMode(t *testing.T) {
	app, server, out := newTestApp(t, WithJSONOutput(false))
	lang := "es"

	server.EXPECT().SetToken("a.b.c")
	server.EXPECT().Profile(gomock.Any()).Return([]models.User{
		{ID: 1, Email: "ana@example.com", LanguagePreference: &lang},
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"profile", "-token", "a.b.c"}))
	assert.Contains(t, out.String(), "Profile (1)")
	assert.Contains(t, out.String(), "ana@example.com")
	assert.Contains(t, out.String(), "es")
	assert.NotContains(t, out.String(), `"email"`)
}

func TestPrint_UnknownValue(t *testing.T) {
	app, _, _ := newTestApp(t, WithJSONOutput(false))
	require.Error(t, app.print(42))
}

func TestLogin_WhitespacePasswordIsSent(t *testing.T) {
	app, server, _ := newTestApp(t)

	server.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ana@example.com", Password: "   "}).
		Return(models.LoginResponse{Token: "a.b.c"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"login", "-email", "ana@example.com", "-password", "   "}))
}
