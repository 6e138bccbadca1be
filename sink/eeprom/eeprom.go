package eeprom

import (
	"fmt"
	"io"
	"sync"
)

// Region is the byte-addressable window a concrete EEPROM (or any other
// fixed-size storage) exposes to the sink.
type Region interface {
	io.ReaderAt
	io.WriterAt
	// Size returns the window size in bytes.
	Size() int64
}

// Config holds configuration for the EEPROM sink.
type Config struct {
	// Region is the storage window. Required.
	Region Region
	// Banner, when non-empty, is staged into the owning logger at
	// bring-up, e.g. a reboot marker that separates log sessions.
	Banner string
}

// Sink appends flushed log bytes into a fixed-size region, wrapping
// around to the start once the window is exhausted. The newest data
// always survives; a reader must locate the wrap point to recover
// chronological order.
type Sink struct {
	mu      sync.Mutex
	region  Region
	banner  string
	cursor  int64 // next write offset within the region
	written int64 // total bytes ever appended
}

// New creates an EEPROM sink over the given region.
func New(cfg Config) (*Sink, error) {
	if cfg.Region == nil {
		return nil, fmt.Errorf("eeprom: region is required")
	}
	if cfg.Region.Size() <= 0 {
		return nil, fmt.Errorf("eeprom: region size must be positive, got %d", cfg.Region.Size())
	}
	return &Sink{region: cfg.Region, banner: cfg.Banner}, nil
}

// Initialize implements sink.Initializer, staging the configured banner
// into the owning logger.
func (s *Sink) Initialize(w io.Writer) error {
	if s.banner == "" {
		return nil
	}
	_, err := io.WriteString(w, s.banner)
	return err
}

// Append implements sink.Sink. Writes wrap around the region boundary,
// overwriting the oldest persisted data.
func (s *Sink) Append(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.region.Size()
	total := 0
	for len(p) > 0 {
		chunk := p
		if room := size - s.cursor; int64(len(chunk)) > room {
			chunk = p[:room]
		}
		n, err := s.region.WriteAt(chunk, s.cursor)
		total += n
		s.cursor = (s.cursor + int64(n)) % size
		s.written += int64(n)
		if err != nil {
			return total, err
		}
		p = p[n:]
	}
	return total, nil
}

// PersistedSize implements sink.CapacityReporter.
func (s *Sink) PersistedSize() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.written > s.region.Size() {
		return s.region.Size(), true
	}
	return s.written, true
}

// PersistedCapacity implements sink.CapacityReporter.
func (s *Sink) PersistedCapacity() (int64, bool) {
	return s.region.Size(), true
}

// ReadAll returns the persisted bytes in write order, oldest first,
// accounting for wraparound.
func (s *Sink) ReadAll() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.region.Size()
	if s.written == 0 {
		return nil, nil
	}

	if s.written <= size {
		out := make([]byte, s.written)
		if _, err := s.region.ReadAt(out, 0); err != nil {
			return nil, err
		}
		return out, nil
	}

	// Wrapped: oldest surviving byte sits at the cursor.
	out := make([]byte, size)
	tailLen := size - s.cursor
	if _, err := s.region.ReadAt(out[:tailLen], s.cursor); err != nil {
		return nil, err
	}
	if _, err := s.region.ReadAt(out[tailLen:], 0); err != nil {
		return nil, err
	}
	return out, nil
}
