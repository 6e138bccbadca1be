package sink

import (
	"bytes"
	"fmt"
	"sync"
)

// MemSink is an in-memory sink. It backs tests and examples, and doubles
// as a bounded staging target when Limit is set: appends past the limit
// are short writes, mimicking a storage device running out of room.
type MemSink struct {
	// Limit caps the total number of bytes accepted. Zero means unbounded.
	Limit int64

	mu  sync.Mutex
	buf bytes.Buffer
}

// Append implements Sink.
func (m *MemSink) Append(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Limit > 0 {
		room := m.Limit - int64(m.buf.Len())
		if room < int64(len(p)) {
			if room < 0 {
				room = 0
			}
			m.buf.Write(p[:room])
			return int(room), fmt.Errorf("memory sink full: %d byte limit", m.Limit)
		}
	}
	return m.buf.Write(p)
}

// PersistedSize implements CapacityReporter.
func (m *MemSink) PersistedSize() (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(m.buf.Len()), true
}

// PersistedCapacity implements CapacityReporter. The capacity is unknown
// when no Limit is configured.
func (m *MemSink) PersistedCapacity() (int64, bool) {
	if m.Limit <= 0 {
		return 0, false
	}
	return m.Limit, true
}

// Bytes returns a copy of everything appended so far.
func (m *MemSink) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, m.buf.Len())
	copy(out, m.buf.Bytes())
	return out
}

// String returns the appended content as a string.
func (m *MemSink) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.String()
}

// Reset discards all appended content.
func (m *MemSink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf.Reset()
}

// Nop is a sink that discards everything. Useful for benchmarks and for
// disabling persistence without touching call sites.
type Nop struct{}

// Append implements Sink.
func (Nop) Append(p []byte) (int, error) {
	return len(p), nil
}
