package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()
	prev := L
	t.Cleanup(func() {
		_ = Close()
		L = prev
	})
}

func TestInit_DisabledDiscards(t *testing.T) {
	restore(t)
	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInit_Writer(t *testing.T) {
	restore(t)
	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &out, Level: slog.LevelDebug}))

	Debug("stack grow", "from", 2, "to", 4)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "stack grow", rec["msg"])
	assert.EqualValues(t, 4, rec["to"])
}

func TestInit_FileInLogDir(t *testing.T) {
	restore(t)
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))

	Info("hello")
	Debug("filtered at info level")

	name := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.NotContains(t, string(data), "filtered")
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	old := logPrefix + "2024-01-01" + logSuffix
	fresh := logPrefix + "2024-02-25" + logSuffix
	other := "unrelated.log"
	for _, name := range []string{old, fresh, other} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cleanOldLogs(dir, now)

	assert.NoFileExists(t, filepath.Join(dir, old))
	assert.FileExists(t, filepath.Join(dir, fresh))
	assert.FileExists(t, filepath.Join(dir, other))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestInit_ZeroLevelIsInfo(t *testing.T) {
	restore(t)
	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &out}))

	Debug("hidden")
	Error("shown", "error", "boom")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), `"level":"ERROR"`)
}

func TestInit_ReinitClosesPreviousFile(t *testing.T) {
	restore(t)
	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	first := file
	require.NotNil(t, first)

	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	require.NotSame(t, first, file)
	_, err := first.WriteString("late\n")
	assert.True(t, errors.Is(err, os.ErrClosed), "previous log file left open: %v", err)

	require.NoError(t, Close())
	assert.Nil(t, file)
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
	require.NoError(t, Close(), "Close is idempotent")
}
