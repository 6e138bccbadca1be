package sloglog

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/embedlog/embedlog/logger"
	"github.com/embedlog/embedlog/sink"
)

func newTestLogger(t *testing.T, mem *sink.MemSink) *logger.Logger {
	t.Helper()
	l, err := logger.New(mem, logger.Config{Capacity: 1024})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestHandle_StagesUntilFlush(t *testing.T) {
	mem := &sink.MemSink{}
	engine := newTestLogger(t, mem)
	sl := slog.New(NewHandler(engine, slog.LevelDebug))

	sl.Info("valve open", "pressure", 42)

	if mem.String() != "" {
		t.Fatalf("record reached the sink before flush: %q", mem.String())
	}
	if err := engine.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := mem.String(), "<I> valve open pressure=42\n"; got != want {
		t.Errorf("sink content = %q, want %q", got, want)
	}
}

func TestEnabled_RefusesBelowMin(t *testing.T) {
	mem := &sink.MemSink{}
	engine := newTestLogger(t, mem)
	sl := slog.New(NewHandler(engine, slog.LevelWarn))

	sl.Info("quiet")
	sl.Warn("loud")
	if err := engine.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	out := mem.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("suppressed record leaked: %q", out)
	}
	if !strings.Contains(out, "<W> loud\n") {
		t.Errorf("admitted record missing: %q", out)
	}
}

func TestLevelMapping(t *testing.T) {
	mem := &sink.MemSink{}
	engine := newTestLogger(t, mem)
	sl := slog.New(NewHandler(engine, slog.LevelDebug))

	sl.Debug("d")
	sl.Info("i")
	sl.Warn("w")
	sl.Error("e")
	if err := engine.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got, want := mem.String(), "<D> d\n<I> i\n<W> w\n<E> e\n"; got != want {
		t.Errorf("sink content = %q, want %q", got, want)
	}
}

func TestWithAttrsAndGroup(t *testing.T) {
	mem := &sink.MemSink{}
	engine := newTestLogger(t, mem)
	sl := slog.New(NewHandler(engine, slog.LevelDebug))

	sl = sl.With("unit", "pump-1").WithGroup("io")
	sl.Info("read done", "bytes", 128)
	if err := engine.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got, want := mem.String(), "<I> read done unit=pump-1 io.bytes=128\n"; got != want {
		t.Errorf("sink content = %q, want %q", got, want)
	}
}
