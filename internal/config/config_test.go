package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fir-portal/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "s3cret")
	for _, k := range []string{"MONGO_URI", "MONGO_MAX_ATTEMPTS", "MONGO_RETRY_DELAY", "MONGO_TIMEOUT", "NATS_SUBJECT", "SERVER_GRPC_PORT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "50051", cfg.Server.GRPCPort)
	assert.Equal(t, 3, cfg.Mongo.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Mongo.RetryDelay)
	assert.Equal(t, 2*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, "fir.notifications", cfg.NATS.Subject)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MONGO_URI", "")
	t.Setenv("DATABASE_URL", "postgres://x/y")
	t.Setenv("MONGO_MAX_ATTEMPTS", "5")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Mongo.URI)
	assert.Equal(t, "postgres://x/y", cfg.Database.URL)
	assert.Equal(t, 5, cfg.Mongo.MaxAttempts)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	for _, k := range []string{"JWT_SECRET", "SERVER_WEB_PORT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt:\n  secret: from-file\nserver:\n  web_port: \"9090\"\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "9090", cfg.Server.WebPort)
}

func TestLoadRequiresSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load("")
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
