package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/embedlog/embedlog/core"
	"github.com/embedlog/embedlog/ring"
	"github.com/embedlog/embedlog/sink"
)

// overrunMarker is staged at Critical level on the first flush after an
// overrun, so the loss is visible inside the exported stream itself.
const overrunMarker = "---Log buffer overrun detected---\n"

// Config holds logger construction options. The zero value gives an
// enabled logger at the Debug ceiling with a 1 KiB staging buffer,
// auto-flush on and echo off.
type Config struct {
	// Disabled constructs the logger with the master switch off.
	Disabled bool

	// Level is the initial runtime ceiling. Zero (Off) is replaced with
	// core.DefaultLevel; use SetLevel(core.Off) to silence a logger.
	Level core.Level

	// Limit is the maximum ceiling SetLevel will accept. Zero is
	// replaced with core.Debug.
	Limit core.Level

	// Capacity is the staging buffer size in bytes. Zero is replaced
	// with core.DefaultCapacity.
	Capacity int

	// Echo mirrors every admitted message synchronously to EchoWriter.
	Echo bool

	// EchoWriter is the echo destination. Defaults to os.Stdout.
	EchoWriter io.Writer

	// NoAutoFlush disables flushing when the staging buffer fills.
	// Writes against a full buffer then set the overrun flag and the
	// incoming bytes are dropped (or the oldest bytes are overwritten,
	// under DropOldest).
	NoAutoFlush bool

	// Policy selects the full-buffer behavior when auto-flush is off.
	Policy OverflowPolicy

	// Prefix, when non-nil, is rendered after the level tag and before
	// the message of every record. Typical use is a timestamp.
	Prefix func() string
}

func applyDefaults(cfg *Config) {
	if cfg.Level == core.Off {
		cfg.Level = core.DefaultLevel
	}
	if cfg.Limit == core.Off {
		cfg.Limit = core.Debug
	}
	if cfg.Level > cfg.Limit {
		cfg.Level = cfg.Limit
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = core.DefaultCapacity
	}
	if cfg.EchoWriter == nil {
		cfg.EchoWriter = os.Stdout
	}
}

// Logger stages formatted log records in a circular byte buffer and
// exports them to a Sink on flush.
//
// A Logger performs no internal locking: it is designed for a single
// owning goroutine plus same-goroutine reentrant callers that use the
// FromInterrupt entry points. Concurrent use from multiple goroutines
// requires external synchronization.
type Logger struct {
	sink   sink.Sink
	buf    *ring.Ring
	echoW  io.Writer
	prefix func() string
	policy OverflowPolicy
	limit  core.Level

	enabled   bool
	level     core.Level
	echo      bool
	autoFlush bool
	overrun   bool

	stats Stats
	w     stageWriter
}

// stageWriter adapts the byte-staging path to io.Writer so the fmt
// machinery and sink Initialize hooks can render straight into the ring.
type stageWriter struct {
	l *Logger
}

func (w stageWriter) Write(p []byte) (int, error) {
	for _, c := range p {
		w.l.stageByte(c)
	}
	return len(p), nil
}

// New creates a logger that flushes into s. If s implements
// sink.Initializer, the hook runs before New returns and may stage
// bring-up metadata through the returned writer.
func New(s sink.Sink, cfg Config) (*Logger, error) {
	if s == nil {
		return nil, errors.New("logger: nil sink")
	}
	applyDefaults(&cfg)

	l := &Logger{
		sink:      s,
		buf:       ring.New(cfg.Capacity),
		echoW:     cfg.EchoWriter,
		prefix:    cfg.Prefix,
		policy:    cfg.Policy,
		limit:     cfg.Limit,
		enabled:   !cfg.Disabled,
		level:     cfg.Level,
		echo:      cfg.Echo,
		autoFlush: !cfg.NoAutoFlush,
	}
	l.w = stageWriter{l}

	if init, ok := s.(sink.Initializer); ok {
		if err := init.Initialize(l.w); err != nil {
			return nil, fmt.Errorf("logger: sink initialize: %w", err)
		}
	}
	return l, nil
}

// Log stages a formatted record at the given level. The call is silently
// rejected when the logger is disabled or the level exceeds the current
// ceiling. Rendering may trigger a flush when auto-flush is enabled and
// the staging buffer fills.
func (l *Logger) Log(level core.Level, format string, args ...any) {
	if !l.admits(level) {
		return
	}
	l.render(l.w, level, format, args)
	if l.echo {
		l.render(l.echoW, level, format, args)
	}
}

// LogFromInterrupt stages a record without any blocking side effects:
// auto-flush and echo are forced off for the duration of the call and
// restored afterwards. Restoring does not trigger a deferred flush, so a
// record staged here can wait indefinitely for the next ordinary Log or
// an explicit Flush before reaching the sink. That is an accepted risk
// of the no-blocking-in-interrupt contract.
func (l *Logger) LogFromInterrupt(level core.Level, format string, args ...any) {
	if !l.admits(level) {
		return
	}
	flushSetting := l.SetAutoFlush(false)
	echoSetting := l.SetEcho(false)

	l.render(l.w, level, format, args)

	l.SetAutoFlush(flushSetting)
	l.SetEcho(echoSetting)
}

// Print stages raw formatted content with no level tag or prefix. Echo
// applies as usual. Print bypasses the enabled switch and level
// filtering; it is the escape hatch sinks use to record bring-up
// metadata.
func (l *Logger) Print(format string, args ...any) {
	l.printf(l.w, format, args)
	if l.echo {
		l.printf(l.echoW, format, args)
	}
}

func (l *Logger) admits(level core.Level) bool {
	return l.enabled && level != core.Off && l.level.Admits(level)
}

func (l *Logger) render(w io.Writer, level core.Level, format string, args []any) {
	fmt.Fprintf(w, "<%s> ", level.Tag())
	if l.prefix != nil {
		io.WriteString(w, l.prefix())
	}
	l.printf(w, format, args)
}

func (l *Logger) printf(w io.Writer, format string, args []any) {
	fmt.Fprintf(w, format, args...)
}

// stageByte is the single chokepoint for bytes entering the staging
// buffer. A full buffer either triggers a flush (auto-flush on), drops
// the byte and raises the overrun flag (DropNewest), or overwrites the
// oldest byte (DropOldest).
func (l *Logger) stageByte(c byte) {
	if l.buf.Full() {
		switch {
		case l.autoFlush:
			if err := l.Flush(); err != nil {
				l.markOverrun()
				return
			}
		case l.policy == DropOldest:
			// Ring overwrite: Put below evicts the oldest byte.
			l.stats.addDropped(1)
		default:
			l.markOverrun()
			return
		}
	}
	l.buf.Put(c)
	l.stats.addStaged(1)
}

func (l *Logger) markOverrun() {
	if !l.overrun {
		l.overrun = true
		l.stats.addOverrun()
	}
	l.stats.addDropped(1)
}

// Flush exports the staged bytes to the sink in at most two contiguous
// writes and resets the staging buffer. A flush of an empty buffer is a
// no-op. When an overrun is pending, a successful export is followed by
// the overrun marker record and a second export; the flag is cleared
// regardless of the ceiling so the loss is never silently forgotten.
// If the sink buffers internally (it implements sink.Flusher), the
// exported bytes are pushed through to durable storage before Flush
// returns.
//
// On sink failure the staged bytes are left in place and a *FlushError
// reports how many bytes the sink accepted. The caller decides whether
// to retry, Clear, or halt.
func (l *Logger) Flush() error {
	written, err := l.export()
	if err != nil {
		return err
	}
	if l.overrun {
		l.overrun = false
		l.render(l.w, core.Critical, overrunMarker, nil)
		if l.echo {
			l.render(l.echoW, core.Critical, overrunMarker, nil)
		}
		n, err := l.export()
		written += n
		if err != nil {
			return err
		}
	}
	if f, ok := l.sink.(sink.Flusher); ok {
		if err := f.Flush(); err != nil {
			return &FlushError{Written: written, Pending: l.buf.Size(), Err: err}
		}
	}
	return nil
}

func (l *Logger) export() (int, error) {
	if l.buf.Size() == 0 {
		return 0, nil
	}

	first, second := l.buf.Segments()
	total := 0

	n, err := l.sink.Append(first)
	total += n
	if err != nil {
		return total, &FlushError{Written: total, Pending: l.buf.Size(), Err: err}
	}
	if n < len(first) {
		return total, &FlushError{Written: total, Pending: l.buf.Size(), Err: io.ErrShortWrite}
	}

	if len(second) > 0 {
		n, err = l.sink.Append(second)
		total += n
		if err != nil {
			return total, &FlushError{Written: total, Pending: l.buf.Size(), Err: err}
		}
		if n < len(second) {
			return total, &FlushError{Written: total, Pending: l.buf.Size(), Err: io.ErrShortWrite}
		}
	}

	l.buf.Reset()
	l.stats.addFlush(uint64(total))
	return total, nil
}

// Clear discards all staged bytes without exporting them and clears the
// overrun flag. Unlike Flush, Clear never emits the overrun marker:
// clearing is an explicit request to forget everything staged, the
// record of the loss included.
func (l *Logger) Clear() {
	l.overrun = false
	l.buf.Reset()
}

// Level returns the current runtime ceiling.
func (l *Logger) Level() core.Level {
	return l.level
}

// SetLevel sets the runtime ceiling. Values above the construction-time
// Limit leave the ceiling unchanged. The resulting ceiling is returned.
func (l *Logger) SetLevel(v core.Level) core.Level {
	if v >= core.Off && v <= l.limit {
		l.level = v
	}
	return l.level
}

// Echo reports whether echo to the console writer is enabled.
func (l *Logger) Echo() bool {
	return l.echo
}

// SetEcho enables or disables echo and returns the previous setting,
// supporting the save-and-restore idiom:
//
//	prev := log.SetEcho(false)
//	// ... quiet work ...
//	log.SetEcho(prev)
func (l *Logger) SetEcho(en bool) bool {
	prev := l.echo
	l.echo = en
	return prev
}

// AutoFlush reports whether the logger flushes automatically when the
// staging buffer fills.
func (l *Logger) AutoFlush() bool {
	return l.autoFlush
}

// SetAutoFlush enables or disables auto-flush and returns the previous
// setting.
func (l *Logger) SetAutoFlush(en bool) bool {
	prev := l.autoFlush
	l.autoFlush = en
	return prev
}

// Enabled reports whether the logger is accepting statements.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// SetEnabled flips the master switch and returns the previous setting.
func (l *Logger) SetEnabled(en bool) bool {
	prev := l.enabled
	l.enabled = en
	return prev
}

// HasOverrun reports whether staged data has been lost since the last
// Flush or Clear.
func (l *Logger) HasOverrun() bool {
	return l.overrun
}

// Size returns the persisted log size reported by the sink, falling
// back to the staged byte count for sinks that cannot report one.
func (l *Logger) Size() int64 {
	if cr, ok := l.sink.(sink.CapacityReporter); ok {
		if n, known := cr.PersistedSize(); known {
			return n
		}
	}
	return int64(l.buf.Size())
}

// Capacity returns the persisted log capacity reported by the sink,
// falling back to the staging buffer capacity.
func (l *Logger) Capacity() int64 {
	if cr, ok := l.sink.(sink.CapacityReporter); ok {
		if n, known := cr.PersistedCapacity(); known {
			return n
		}
	}
	return int64(l.buf.Capacity())
}

// StagedSize returns the number of bytes waiting in the staging buffer.
func (l *Logger) StagedSize() int {
	return l.buf.Size()
}

// StagedCapacity returns the staging buffer capacity in bytes.
func (l *Logger) StagedCapacity() int {
	return l.buf.Capacity()
}

// Stats returns a snapshot of the logger's counters.
func (l *Logger) Stats() Snapshot {
	return l.stats.snapshot()
}

// Critical stages a record at the Critical level.
func (l *Logger) Critical(format string, args ...any) {
	l.Log(core.Critical, format, args...)
}

// CriticalFromInterrupt stages a Critical record via the interrupt-safe path.
func (l *Logger) CriticalFromInterrupt(format string, args ...any) {
	l.LogFromInterrupt(core.Critical, format, args...)
}

// Error stages a record at the Error level.
func (l *Logger) Error(format string, args ...any) {
	l.Log(core.Error, format, args...)
}

// ErrorFromInterrupt stages an Error record via the interrupt-safe path.
func (l *Logger) ErrorFromInterrupt(format string, args ...any) {
	l.LogFromInterrupt(core.Error, format, args...)
}

// Warning stages a record at the Warning level.
func (l *Logger) Warning(format string, args ...any) {
	l.Log(core.Warning, format, args...)
}

// WarningFromInterrupt stages a Warning record via the interrupt-safe path.
func (l *Logger) WarningFromInterrupt(format string, args ...any) {
	l.LogFromInterrupt(core.Warning, format, args...)
}

// Info stages a record at the Info level.
func (l *Logger) Info(format string, args ...any) {
	l.Log(core.Info, format, args...)
}

// InfoFromInterrupt stages an Info record via the interrupt-safe path.
func (l *Logger) InfoFromInterrupt(format string, args ...any) {
	l.LogFromInterrupt(core.Info, format, args...)
}

// Debug stages a record at the Debug level.
func (l *Logger) Debug(format string, args ...any) {
	l.Log(core.Debug, format, args...)
}

// DebugFromInterrupt stages a Debug record via the interrupt-safe path.
func (l *Logger) DebugFromInterrupt(format string, args ...any) {
	l.LogFromInterrupt(core.Debug, format, args...)
}
