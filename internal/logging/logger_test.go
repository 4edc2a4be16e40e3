package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("debug"))
	assert.True(t, IsValid("warning"))
	assert.False(t, IsValid("verbose"))
	assert.False(t, IsValid(""))
}

func TestLoggerWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Output = &buf
	opts.NoColor = true
	opts.ReportTimestamp = false

	l := New(opts)
	l.Info("probing", "name", "git")

	out := buf.String()
	assert.Contains(t, out, "probing")
	assert.Contains(t, out, "git")
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Output = &buf
	opts.NoColor = true
	opts.Level = LevelWarn

	l := New(opts)
	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("visible warn")

	out := buf.String()
	assert.NotContains(t, out, "hidden debug")
	assert.NotContains(t, out, "hidden info")
	assert.Contains(t, out, "visible warn")
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Output = &buf
	opts.NoColor = true

	l := New(opts)
	l.SetLevel(LevelError)
	l.Info("should not appear")
	l.Error("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
}

func TestLoggerWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Output = &buf
	opts.NoColor = true

	l := New(opts).WithPrefix("runner")
	l.Info("started")

	assert.Contains(t, buf.String(), "runner")
}

func TestNopLogger(t *testing.T) {
	l := NewNop()

	// Must not panic, and chaining must keep returning a usable logger.
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
	l.SetLevel(LevelDebug)
	assert.NotNil(t, l.WithPrefix("x"))
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkup.log")

	l, err := NewFileLogger(path, LevelDebug)
	require.NoError(t, err)

	l.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNewFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "checkup.log"), LevelInfo)
	assert.Error(t, err)
}
