package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestSetupLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, closers, err := setupLogger(Config{Level: "warn"}, &buf)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Info("hidden")
	logger.Warn("shown", "key", "Escape")
	logger.Error("failed", "value", -999999)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "key=Escape")
	assert.Equal(t, 1, strings.Count(out, "failed"), "errors must be written once")
}

func TestSetupLoggerJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdlkey.log")
	var console bytes.Buffer
	logger, closers, err := setupLogger(Config{Level: "debug", Format: "json", File: path}, &console)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.With("component", "test").Debug("lookup", "value", 27)
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "lookup", rec["msg"])
	assert.Equal(t, "test", rec["component"])
	assert.Equal(t, float64(27), rec["value"])
	assert.Contains(t, console.String(), `"msg":"lookup"`)
}
