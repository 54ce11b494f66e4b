package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info("quiet")
	log.Warn("loud", "round", 2)

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "round=2")
	assert.Regexp(t, `time=\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z`, out)
}

func TestNew_FansOutToAllWriters(t *testing.T) {
	var a, b bytes.Buffer
	log := New("debug", &a, nil, &b)

	log.With("round", "r1").Debug("tick")

	assert.Contains(t, a.String(), "round=r1")
	assert.Contains(t, b.String(), "msg=tick")
}

func TestNew_NoWriters(t *testing.T) {
	log := New("info")
	assert.NotPanics(t, func() { log.Info("dropped") })
}

func TestOpen_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paintball.log")
	var console bytes.Buffer

	log, closeFn, err := Open("info", path, &console)
	require.NoError(t, err)
	log.Info("round finished")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "round finished")
	assert.Contains(t, console.String(), "round finished")
}

func TestOpen_BadPath(t *testing.T) {
	_, _, err := Open("info", filepath.Join(t.TempDir(), "missing", "x.log"), nil)
	assert.Error(t, err)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}

func TestMultiHandler_ContinuesPastFailure(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(failingHandler{}, slog.NewTextHandler(&buf, nil))

	err := slog.New(h).Handler().Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "still written", 0))

	assert.Error(t, err)
	assert.Contains(t, buf.String(), "still written")
}
