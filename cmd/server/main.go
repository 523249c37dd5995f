package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-softjobs/internal/config"
	"github.com/MKhiriev/go-softjobs/internal/handler"
	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/internal/server"
	"github.com/MKhiriev/go-softjobs/internal/service"
	"github.com/MKhiriev/go-softjobs/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("softjobs-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log, err = log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("db", cfg.Storage.DB.RedactedConnectionString()).
		Dur("token_duration", cfg.App.TokenDuration).
		Bool("fallback_key_set", cfg.App.TokenSignKey != "").
		Msg("received configs")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// openStorages is swapped in tests.
var openStorages = store.NewStorages

// run wires the layers and serves until a stop signal. The storage pool is
// closed on every return path.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := openStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
