package serialsink

import "sync"

// Port is the minimal transmit capability the sink needs from a serial
// device. Platform adapters turn a periph.io UART or a TinyGo machine
// UART into a Port.
type Port interface {
	Write(p []byte) (n int, err error)
}

// Sink writes flushed log bytes to a serial port.
type Sink struct {
	mu   sync.Mutex
	port Port
}

// New creates a serial sink over an opened port.
func New(port Port) *Sink {
	return &Sink{port: port}
}

// Append implements sink.Sink.
func (s *Sink) Append(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port.Write(p)
}
