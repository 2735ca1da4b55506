package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file selecting redis
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
storage: redis
redis:
  host: cache
  port: "6380"
session:
  cookie-name: ttt
  ttl: 30m
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: every value comes from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "ttt", conf.Session.CookieName)
		assert.Equal(t, 30*time.Minute, conf.Session.TTL)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: a missing file is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "user_session", conf.Session.CookieName)
		assert.Equal(t, 24*time.Hour, conf.Session.TTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an env override
		path := writeConfig(t, "http-port: \"8080\"\n")
		t.Setenv("HTTP_PORT", "7070")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the env wins
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Rejects an unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: postgres\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("Rejects a negative session lifetime", func(t *testing.T) {
		path := writeConfig(t, "session:\n  ttl: -1s\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidSessionTTL)
	})
}
