package cli

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
)

func TestInitLogger(t *testing.T) {
	ctx := context.Background()

	for level, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	} {
		logger := initLogger(&bytes.Buffer{}, &config.Config{LogLevel: level})

		assert.True(t, logger.Enabled(ctx, want), level)
		assert.False(t, logger.Enabled(ctx, want-1), level)
	}
}

func TestRootCmd_ServeRejectsBadConfig(t *testing.T) {
	// Given: a storage backend that does not exist
	t.Setenv("STORAGE", "postgres")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"serve", "--config", t.TempDir() + "/missing.yml"})

	// When: serve is executed
	err := cmd.Execute()

	// Then: it fails before starting the server
	assert.ErrorIs(t, err, config.ErrUnknownStorage)
}
