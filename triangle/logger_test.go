package triangle

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/aaronkistenmacher/MultiPoint/gltest"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Errorf("SetLogger(nil) did not restore the silent logger")
	}
}

func TestLoggerTransitions(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r, err := New(gltest.New(), Translated{Offset: DefaultOffset})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, state := range []State{ContextAcquired, PipelineReady, BuffersBound, Rendered} {
		if !strings.Contains(out, "state="+state.String()) {
			t.Errorf("log missing transition to %v:\n%s", state, out)
		}
	}
	if !strings.Contains(out, "variant=translated") {
		t.Errorf("log missing variant name:\n%s", out)
	}
}
