package sink

import "io"

// Multi fans appended bytes out to several sinks, e.g. a serial console
// for live viewing alongside an EEPROM region for post-mortem recovery.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a fan-out sink over the given children.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Append implements Sink. Every child receives the bytes; the returned
// count is the smallest any child accepted, and the error is the first
// one encountered.
func (m *Multi) Append(p []byte) (int, error) {
	n := len(p)
	var firstErr error
	for _, s := range m.sinks {
		w, err := s.Append(p)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if w < n {
			n = w
		}
	}
	return n, firstErr
}

// Initialize implements Initializer, forwarding to every child that has
// a bring-up hook.
func (m *Multi) Initialize(w io.Writer) error {
	for _, s := range m.sinks {
		if init, ok := s.(Initializer); ok {
			if err := init.Initialize(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush implements Flusher, forwarding to every child that buffers.
func (m *Multi) Flush() error {
	var firstErr error
	for _, s := range m.sinks {
		if f, ok := s.(Flusher); ok {
			if err := f.Flush(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// PersistedSize implements CapacityReporter. The first child able to
// report answers; size and capacity always come from the same child.
func (m *Multi) PersistedSize() (int64, bool) {
	if r := m.reporter(); r != nil {
		return r.PersistedSize()
	}
	return 0, false
}

// PersistedCapacity implements CapacityReporter.
func (m *Multi) PersistedCapacity() (int64, bool) {
	if r := m.reporter(); r != nil {
		return r.PersistedCapacity()
	}
	return 0, false
}

func (m *Multi) reporter() CapacityReporter {
	for _, s := range m.sinks {
		if r, ok := s.(CapacityReporter); ok {
			if _, known := r.PersistedCapacity(); known {
				return r
			}
		}
	}
	return nil
}
