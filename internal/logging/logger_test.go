package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(level string) (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(level))
	return slog.New(newConsoleHandler(buf, levelVar)), buf
}

func TestConsoleHandlerOutputShape(t *testing.T) {
	logger, buf := newBufferLogger("info")
	logger = NewComponentLogger(logger, "orchestrator")

	logger.Info("stage command", String(FieldStage, "mpileup"), String(FieldCommand, "samtools mpileup"))

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, "INFO orchestrator: stage command") {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.Contains(line, `stage=mpileup`) {
		t.Fatalf("missing stage attr in %q", line)
	}
	if !strings.Contains(line, `command="samtools mpileup"`) {
		t.Fatalf("expected quoted command attr in %q", line)
	}
}

func TestConsoleHandlerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger("warn")
	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info line should have been filtered: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewRejectsStdout(t *testing.T) {
	if _, err := New(Options{OutputPaths: []string{"stdout"}}); err == nil {
		t.Fatal("stdout must be rejected as a log destination")
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected format error")
	}
}

func TestNoopLogger(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("noop logger should never be enabled")
	}
}

func TestForRunAddsWorkDirFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := ForRun("debug", "console", dir)
	if err != nil {
		t.Fatal(err)
	}
	if logger == nil {
		t.Fatal("expected logger")
	}
}
