package consolesink

import (
	"io"
	"os"
	"sync"
)

// Config holds configuration for the console sink.
type Config struct {
	// Writer is the output stream. Defaults to os.Stdout.
	Writer io.Writer

	// OnAppend, when non-nil, is called after every append with the
	// number of bytes written. Tests use it to observe flush activity.
	OnAppend func(n int)
}

// Sink writes flushed log bytes to an io.Writer. Writes are serialized
// with a mutex so a flushing logger and any other user of the sink never
// interleave within a single append.
type Sink struct {
	mu       sync.Mutex
	w        io.Writer
	onAppend func(n int)
}

// New creates a console sink.
func New(cfg Config) *Sink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	return &Sink{w: cfg.Writer, onAppend: cfg.OnAppend}
}

// Append implements sink.Sink.
func (s *Sink) Append(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.w.Write(p)
	if s.onAppend != nil {
		s.onAppend(n)
	}
	return n, err
}
