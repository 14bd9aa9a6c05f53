package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "STATIC_PATH", "DATABASE_URL", "DB_DRIVER", "DB_PATH", "JWT_SECRET", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Allocation.ReconcileRounding)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "aidledger.yaml", `
server:
  port: 9090
  allowed_origins: ["http://localhost:5173"]
database:
  driver: postgres
  url: postgres://localhost/aidledger
auth:
  jwt_secret: 0123456789abcdef
  token_ttl: 12h
allocation:
  reconcile_rounding: false
drafts:
  ttl: 45m
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Allocation.ReconcileRounding)
	assert.Equal(t, 45*time.Minute, cfg.Drafts.TTL)
	// Unset keys keep their defaults.
	assert.Equal(t, 5*time.Minute, cfg.Drafts.SweepInterval)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "bad.yaml", "server: [")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("DATABASE_URL selects postgres", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "postgres://db/aid")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "postgres://db/aid", cfg.Database.URL)
	})

	t.Run("DB_DRIVER wins over DATABASE_URL", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "postgres://db/aid")
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("DB_PATH", "/tmp/aid.db")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, "/tmp/aid.db", cfg.Database.Path)
	})

	t.Run("env beats file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "7000")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		path := writeFile(t, "c.yaml", "server:\n  port: 9090\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7000, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("bad PORT", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "eighty")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is set, even to "".
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	path := writeFile(t, ".env", "JWT_SECRET=from-dotenv-secret-value\n")

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv-secret-value", cfg.Auth.JWTSecret)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Auth.JWTSecret = "0123456789abcdef"
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"driver", func(c *Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"postgres url", func(c *Config) { c.Database.Driver = DriverPostgres }, "database.url"},
		{"secret", func(c *Config) { c.Auth.JWTSecret = "short" }, "jwt_secret"},
		{"level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"draft ttl", func(c *Config) { c.Drafts.TTL = 0 }, "drafts.ttl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExampleConfigIsValid(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join("..", "..", "config.example.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Drafts.SweepInterval)
}
