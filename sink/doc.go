// Package sink defines the narrow capability interface a storage backend
// implements to receive flushed log bytes, plus optional interfaces for
// capacity reporting and bring-up hooks.
//
// Concrete backends live in subpackages: consolesink for io.Writer
// streams, filesink for append-to-file storage with rotation, eeprom for
// fixed-window byte-addressable regions, and serialsink for serial ports.
package sink
