package sprig

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// captureLogs routes the package logger into a buffer for the test's duration.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func expectPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", substr)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Errorf("panic message should mention %q, got: %s", substr, msg)
		}
	}()
	fn()
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_AttachToDisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer(s.Root(), "parent")
	parent.Dispose()

	expectPanic(t, "disposed", func() { NewContainer(parent, "child") })
}

func TestDebugMode_DrawDisposedPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewContainer(s.Root(), "n")
	n.Dispose()
	var rec RecordingRenderer
	expectPanic(t, "disposed", func() { n.Draw(&rec, Identity) })
}

func TestDisposedDrawIsSilentWithoutDebug(t *testing.T) {
	_, root := newTestRoot()
	n := NewCircle(root, "n", 1, ColorWhite.Ptr(), nil)
	n.Dispose()
	var rec RecordingRenderer
	n.Draw(&rec, Identity)
	if len(rec.Commands) != 0 {
		t.Error("disposed node drew")
	}
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	cur := s.Root()
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		cur = NewContainer(cur, fmt.Sprintf("n%d", i))
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected depth warning, got: %q", buf.String())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer(s.Root(), "wide")
	for i := 0; i <= debugMaxChildCount; i++ {
		NewContainer(parent, "c")
	}
	if !strings.Contains(buf.String(), "child count exceeds threshold") {
		t.Error("expected child count warning")
	}
}

func TestDebugMode_FrameStats(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	NewCircle(s.Root(), "c", 1, ColorWhite.Ptr(), ColorBlack.Ptr())

	var rec RecordingRenderer
	if err := s.Draw(&rec); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "msg=frame") || !strings.Contains(out, "commands=2") || !strings.Contains(out, "nodes=3") {
		t.Errorf("frame stats = %q", out)
	}
	if len(rec.Commands) != 2 {
		t.Errorf("counting wrapper should pass commands through, got %d", len(rec.Commands))
	}
}

func TestLoggerSilentByDefault(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
