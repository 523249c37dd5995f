package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-softjobs/internal/adapter"
	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/models"
)

type App struct {
	server adapter.ServerAdapter
	out    io.Writer

	jsonOutput      bool
	copyToClipboard func(string) error

	logger *logger.Logger
}

// Option configures an App.
type Option func(*App)

// WithJSONOutput switches command output from styled text to JSON.
func WithJSONOutput(enabled bool) Option {
	return func(a *App) { a.jsonOutput = enabled }
}

// WithClipboard replaces the function used by "login -copy".
func WithClipboard(copyFn func(string) error) Option {
	return func(a *App) { a.copyToClipboard = copyFn }
}

func NewApp(server adapter.ServerAdapter, out io.Writer, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		server:          server,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "profile":
		return a.profile(ctx, rest)
	case "whoami":
		return a.whoami(ctx, rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "", "optional role")
	lang := fs.String("lang", "", "optional language preference")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"email": *email, "password": *password}); err != nil {
		return err
	}

	req := models.RegisterRequest{
		Email:              *email,
		Password:           *password,
		Role:               optional(*role),
		LanguagePreference: optional(*lang),
	}

	resp, err := a.server.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return a.print(resp)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	copyToken := fs.Bool("copy", false, "copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"email": *email, "password": *password}); err != nil {
		return err
	}

	resp, err := a.server.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if *copyToken {
		if err = a.copyToClipboard(resp.Token); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.logger.Info().Msg("token copied to clipboard")
	}

	return a.print(resp)
}

func (a *App) profile(ctx context.Context, args []string) error {
	fs := newFlagSet("profile")
	token := fs.String("token", "", "bearer token returned by login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"token": *token}); err != nil {
		return err
	}

	a.server.SetToken(*token)
	return a.printProfile(ctx)
}

func (a *App) whoami(ctx context.Context, args []string) error {
	req, err := parseCredentials("whoami", args)
	if err != nil {
		return err
	}

	if _, err = a.server.Login(ctx, req); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return a.printProfile(ctx)
}

func (a *App) printProfile(ctx context.Context) error {
	users, err := a.server.Profile(ctx)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	return a.print(users)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseCredentials reads the -email and -password flags shared by commands
// that log in.
func parseCredentials(name string, args []string) (models.LoginRequest, error) {
	fs := newFlagSet(name)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return models.LoginRequest{}, err
	}
	if err := required(map[string]string{"email": *email, "password": *password}); err != nil {
		return models.LoginRequest{}, err
	}
	return models.LoginRequest{Email: *email, Password: *password}, nil
}

func required(values map[string]string) error {
	var missing []string
	for _, name := range []string{"email", "password", "token"} {
		if v, ok := values[name]; ok && v == "" {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFlag, strings.Join(missing, ", "))
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
