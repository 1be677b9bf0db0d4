package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, dir string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	return string(content)
}

func TestLogger_WritesFormattedLines(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelDebug)
	defer logger.Close()

	logger.Info("task", "created abc123")
	logger.Error("archive", "boom")

	content := readLog(t, dir)
	assert.Contains(t, content, "[INFO] [task] created abc123")
	assert.Contains(t, content, "[ERROR] [archive] boom")
}

func TestLogger_LevelFilter(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn)
	defer logger.Close()

	logger.Debug("task", "too quiet")
	logger.Info("task", "still too quiet")
	logger.Warn("task", "loud enough")

	content := readLog(t, dir)
	assert.NotContains(t, content, "too quiet")
	assert.Contains(t, content, "[WARN] [task] loud enough")
}

func TestLogger_DisabledWithEmptyDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	defer logger.Close()

	// Must not panic or create files anywhere.
	logger.Info("task", "ignored")
	require.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
