package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("LEGACYREADY_LOG_LEVEL", "")
	t.Setenv("LEGACYREADY_LOG_FILE", "")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	cfg := ConfigFromEnv()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "/tmp/state/legacyready/legacyready.log", cfg.File)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("LEGACYREADY_LOG_LEVEL", "debug")
	t.Setenv("LEGACYREADY_LOG_FILE", Off)

	cfg := ConfigFromEnv()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, Off, cfg.File)
}

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := New(Config{Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("assessment scored", zap.Int("score", 80))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"assessment scored"`)
	assert.Contains(t, out, `"score":80`)
	assert.False(t, strings.Contains(out, "hidden"))
}

func TestNew_Off(t *testing.T) {
	logger, err := New(Config{File: Off})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}
