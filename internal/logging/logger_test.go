package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level string) *slog.Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(level))
	return slog.New(newConsoleHandler(buf, levelVar))
}

func TestConsoleHandlerFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "info")

	logger.Info("loaded records", slog.Int("count", 12), slog.String("path", "paintings-data.csv"))

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level: %q", line)
	}
	if !strings.Contains(line, "loaded records") {
		t.Fatalf("missing message: %q", line)
	}
	if !strings.Contains(line, "count=12") {
		t.Fatalf("missing attr: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("expected trailing newline: %q", line)
	}
}

func TestConsoleHandlerComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "info").With(slog.String("component", "splice"))

	logger.Info("anchors located")

	line := buf.String()
	if !strings.Contains(line, "splice: anchors located") {
		t.Fatalf("component not prefixed: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component attr should be consumed: %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "info")

	logger.Warn("missing asset", slog.String("title", "Dawn over Boston"))

	line := buf.String()
	if !strings.Contains(line, `title="Dawn over Boston"`) {
		t.Fatalf("value with spaces not quoted: %q", line)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "warn")

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must report disabled at every level.
	logger.Error("ignored")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should be disabled")
	}
}
