//go:build tinygo

package serialsink

import "machine"

// UART adapts a machine UART to Port. The UART must already be
// configured with the desired baud rate and pins.
func UART(u *machine.UART) Port {
	return u
}
