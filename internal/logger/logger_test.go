package logger

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// Keeps the body of every exported record
type memoryExporter struct {
	mu     sync.Mutex
	bodies []string
}

func (e *memoryExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range records {
		e.bodies = append(e.bodies, records[i].Body().AsString())
	}
	return nil
}

func (e *memoryExporter) Shutdown(context.Context) error   { return nil }
func (e *memoryExporter) ForceFlush(context.Context) error { return nil }

func (e *memoryExporter) Bodies() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.bodies...)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info("hidden")
	log.Warn("shown", "move", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "move=4")
}

func TestMultiHandler(t *testing.T) {
	var debug, errs bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(handler).With("game", "abc").WithGroup("board")

	log.Debug("move played", "cell", 2)
	assert.Contains(t, debug.String(), "game=abc")
	assert.Contains(t, debug.String(), "board.cell=2")
	assert.Empty(t, errs.String())

	log.Error("aborted")
	assert.Contains(t, errs.String(), "msg=aborted")
	assert.Contains(t, errs.String(), "game=abc")
}

func TestNewFiltersTelemetrySink(t *testing.T) {
	// Given: a logger provider exporting synchronously to memory
	exporter := &memoryExporter{}
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)))
	global.SetLoggerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	// When: logging below and at the configured level
	var buf bytes.Buffer
	log := New(&buf, "error").With("game", "abc")
	log.Debug("debug record")
	log.Info("info record")
	log.Error("error record")

	// Then: both sinks keep only the error
	require.NoError(t, provider.ForceFlush(context.Background()))
	assert.Equal(t, []string{"error record"}, exporter.Bodies())
	assert.NotContains(t, buf.String(), "info record")
	assert.Contains(t, buf.String(), "msg=\"error record\"")
}
