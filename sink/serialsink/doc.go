// Package serialsink provides a sink that transmits flushed log bytes
// over a serial port.
//
// The sink talks to the narrow Port interface; build-tagged adapters
// supply the concrete transport: periph.io UARTs on hosts, machine
// UARTs under TinyGo. Tests can substitute any io.Writer-shaped fake.
package serialsink
