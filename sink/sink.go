package sink

import "io"

// Sink is the capability a storage backend exposes to the logger engine.
// The engine does not know whether the destination is a console, a file,
// or an EEPROM window; it only appends bytes during a flush.
type Sink interface {
	// Append writes p to the backend and returns the number of bytes
	// durably accepted. A short write must be reported with n < len(p)
	// and a non-nil error.
	Append(p []byte) (n int, err error)
}

// CapacityReporter is an optional interface for backends that can report
// how much log data has been persisted and how much room remains. The
// boolean is false when the figure is unknown (e.g. an unbounded stream).
//
// These figures feed the engine's Size and Capacity accessors only; the
// flushing logic never consults them.
type CapacityReporter interface {
	PersistedSize() (int64, bool)
	PersistedCapacity() (int64, bool)
}

// Initializer is an optional interface for backends that want to record
// environment metadata (reboot cause, firmware version) when a logger is
// brought up. The writer stages raw bytes into the owning logger; the
// hook is invoked exactly once, at logger construction.
type Initializer interface {
	Initialize(w io.Writer) error
}

// Flusher is an optional interface for backends that buffer internally
// and can force their own buffered data to durable storage.
type Flusher interface {
	Flush() error
}
