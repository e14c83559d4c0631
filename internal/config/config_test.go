package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/powerfang/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	// An explicit path that does not exist is an error; no path falls back
	// to defaults.
	require.Error(t, err)

	cfg, err = config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Input.Format)
	assert.False(t, cfg.Input.Validate)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "powerfang.yaml")

	content := `
input:
  format: yaml
  validate: true
output:
  color: never
logging:
  level: debug
  format: json
`

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Input.Format)
	assert.True(t, cfg.Input.Validate)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad input format", "input:\n  format: xml\n", config.ErrInvalidInputFormat},
		{"bad color mode", "output:\n  color: sometimes\n", config.ErrInvalidColorMode},
		{"bad log level", "logging:\n  level: chatty\n", config.ErrInvalidLogLevel},
		{"bad log format", "logging:\n  format: xml\n", config.ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "powerfang.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := config.Load(path)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	logger := config.NewLogger(config.LoggingConfig{Level: "debug", Format: "text", Output: "discard"})
	require.NotNil(t, logger)

	jsonLogger := config.NewLogger(config.LoggingConfig{Level: "error", Format: "json", Output: "discard"})
	require.NotNil(t, jsonLogger)
}
