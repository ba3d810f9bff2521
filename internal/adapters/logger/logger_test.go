package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scan/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("Resolving options") },
			goldenName: "logger_info",
		},
		{
			name:       "success",
			log:        func(l *logger.Logger) { l.Success("Automatically switched to Travis formatter") },
			goldenName: "logger_success",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("Multiple workspaces found") },
			goldenName: "logger_warn",
		},
		{
			name:       "error chain",
			log:        func(l *logger.Logger) { l.Error(zerr.Wrap(errors.New("permission denied"), "failed to create directory")) },
			goldenName: "logger_error_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))
	lg.Success("done")

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"level":"SUCCESS"`)
	assert.Contains(t, out, `"msg":"done"`)
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	lg, buf := newLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("plain")
	assert.Equal(t, "plain\n", buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(h).With("scheme", "App").WithGroup("cfg")
	lg.Warn("fallback", "style", "raw")

	assert.Equal(t, "! fallback cfg.scheme=App cfg.style=raw\n", buf.String())
}

func TestPrettyHandler_FiltersBelowLevel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "No project/workspace found"}},
			want:    "Error: No project/workspace found",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "outer"},
				{Message: "middle"},
				{Message: "root"},
			},
			want: "Error: outer\n\n  Caused by:\n    → middle\n    → root",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{
				{Message: "bad value", Metadata: map[string]any{"value": "x", "flag": "-sdk"}},
			},
			want: "Error: bad value\n       flag: -sdk\n       value: x",
		},
		{
			name: "multiline cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "line1\nline2", Metadata: map[string]any{"path": "/tmp"}},
			},
			want: "Error: main\n\n  Caused by:\n    → line1\n      line2\n      path: /tmp",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestCollectErrorEntries(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		entries := logger.CollectErrorEntries(errors.New("simple"))
		require.Len(t, entries, 1)
		assert.Equal(t, "simple", entries[0].Message)
		assert.Nil(t, entries[0].Metadata)
	})

	t.Run("zerr chain", func(t *testing.T) {
		err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")
		entries := logger.CollectErrorEntries(err)

		messages := make([]string, 0, len(entries))
		for _, e := range entries {
			messages = append(messages, e.Message)
		}
		assert.Equal(t, []string{"outer layer", "middle layer", "root cause"}, messages)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntries(nil))
	})
}
