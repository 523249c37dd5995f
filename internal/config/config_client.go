package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the base address of the server (e.g. "localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the CLI client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig loads the client configuration from the environment,
// applies defaults, and validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "localhost:3000"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}

	return cfg, cfg.validate()
}
