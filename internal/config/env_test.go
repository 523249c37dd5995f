package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "30m")
	t.Setenv("APP_PASSWORD_HASH_COST", "12")
	t.Setenv("STORAGE_DB_HOST", "db.internal")
	t.Setenv("STORAGE_DB_PORT", "6543")
	t.Setenv("STORAGE_DB_DATABASE_URI", "sqlite://file.db")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("CONFIG", "/etc/softjobs.json")

	cfg, err := parseEnv[StructuredConfig]()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "db.internal", cfg.Storage.DB.Host)
	assert.Equal(t, 6543, cfg.Storage.DB.Port)
	assert.Equal(t, "sqlite://file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/etc/softjobs.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("APP_PASSWORD_HASH_COST", "ten")

	cfg, err := parseEnv[StructuredConfig]()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "api.test:443")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "3s")

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "api.test:443", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}
