//go:build !tinygo

package serialsink

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

// HostPort is a Port backed by a periph.io UART.
type HostPort struct {
	port uart.PortCloser
	conn conn.Conn
}

// Open opens a UART from the periph.io registry by name (an empty name
// selects the first available port) and configures it as 8N1 at the
// given baud rate.
func Open(name string, baud physic.Frequency) (*HostPort, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("serialsink: host init: %w", err)
	}

	port, err := uartreg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("serialsink: open %q: %w", name, err)
	}

	c, err := port.Connect(baud, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("serialsink: connect %q: %w", name, err)
	}

	return &HostPort{port: port, conn: c}, nil
}

// Write implements Port.
func (p *HostPort) Write(b []byte) (int, error) {
	if err := p.conn.Tx(b, nil); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Close releases the underlying UART.
func (p *HostPort) Close() error {
	return p.port.Close()
}
