package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studieren/compliments/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COMPLIMENTS_AUTH_JWT_SECRET", "s3cret")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "compliments.db", cfg.Database.DSN)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COMPLIMENTS_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("COMPLIMENTS_SERVER_ADDR", ":9090")
	t.Setenv("COMPLIMENTS_DATABASE_DRIVER", "postgres")
	t.Setenv("COMPLIMENTS_DATABASE_DSN", "host=db user=app dbname=app")
	t.Setenv("COMPLIMENTS_REDIS_ADDR", "cache:6379")
	t.Setenv("COMPLIMENTS_AUTH_TOKEN_TTL", "2h")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db user=app dbname=app", cfg.Database.DSN)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "auth:\n  jwt_secret: from-file\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	t.Setenv("COMPLIMENTS_AUTH_JWT_SECRET", "s3cret")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("COMPLIMENTS_AUTH_JWT_SECRET", "")
	_, err := config.Load("")
	assert.ErrorContains(t, err, "jwt_secret")

	t.Setenv("COMPLIMENTS_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("COMPLIMENTS_DATABASE_DRIVER", "oracle")
	_, err = config.Load("")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLoad_RejectsNonPositiveLoginLimits(t *testing.T) {
	t.Setenv("COMPLIMENTS_AUTH_JWT_SECRET", "s3cret")

	t.Setenv("COMPLIMENTS_AUTH_LOGIN_RPS", "0")
	_, err := config.Load("")
	assert.ErrorContains(t, err, "auth.login_rps")

	t.Setenv("COMPLIMENTS_AUTH_LOGIN_RPS", "5")
	t.Setenv("COMPLIMENTS_AUTH_LOGIN_BURST", "-1")
	_, err = config.Load("")
	assert.ErrorContains(t, err, "auth.login_burst")
}
