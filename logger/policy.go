package logger

import "sync/atomic"

// OverflowPolicy defines how the engine treats new bytes when the
// staging buffer is full and auto-flush is disabled.
type OverflowPolicy int

const (
	// DropNewest drops the incoming byte and raises the overrun flag.
	// This is the default: nothing already staged is ever silently
	// lost, and the loss is recorded.
	DropNewest OverflowPolicy = iota
	// DropOldest overwrites the oldest staged byte and never raises
	// the overrun flag. Used by fire-and-forget console loggers that
	// prefer keeping the newest data.
	DropOldest
)

// String returns the string representation of the policy.
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	default:
		return "Unknown"
	}
}

// Stats tracks logger counters. All counters are updated atomically so
// a monitoring goroutine may snapshot them while the owning goroutine
// logs.
type Stats struct {
	stagedBytes  uint64
	droppedBytes uint64
	overruns     uint64
	flushes      uint64
	flushedBytes uint64
}

func (s *Stats) addStaged(n uint64) {
	atomic.AddUint64(&s.stagedBytes, n)
}

func (s *Stats) addDropped(n uint64) {
	atomic.AddUint64(&s.droppedBytes, n)
}

func (s *Stats) addOverrun() {
	atomic.AddUint64(&s.overruns, 1)
}

func (s *Stats) addFlush(bytes uint64) {
	atomic.AddUint64(&s.flushes, 1)
	atomic.AddUint64(&s.flushedBytes, bytes)
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.stagedBytes, 0)
	atomic.StoreUint64(&s.droppedBytes, 0)
	atomic.StoreUint64(&s.overruns, 0)
	atomic.StoreUint64(&s.flushes, 0)
	atomic.StoreUint64(&s.flushedBytes, 0)
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	// StagedBytes counts bytes accepted into the staging buffer.
	StagedBytes uint64
	// DroppedBytes counts bytes lost to overruns or ring overwrite.
	DroppedBytes uint64
	// Overruns counts transitions into the overrun state.
	Overruns uint64
	// Flushes counts successful exports to the sink.
	Flushes uint64
	// FlushedBytes counts bytes the sink durably accepted.
	FlushedBytes uint64
}

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		StagedBytes:  atomic.LoadUint64(&s.stagedBytes),
		DroppedBytes: atomic.LoadUint64(&s.droppedBytes),
		Overruns:     atomic.LoadUint64(&s.overruns),
		Flushes:      atomic.LoadUint64(&s.flushes),
		FlushedBytes: atomic.LoadUint64(&s.flushedBytes),
	}
}
