// Package eeprom provides a sink that persists flushed log bytes into a
// fixed-size byte-addressable window, wrapping around once the window
// is full so the newest data always survives.
//
// The storage itself sits behind the Region interface: MemRegion for
// hosts and tests, and an AT24Cx I2C EEPROM adapter when built with
// TinyGo. Any io.ReaderAt/io.WriterAt with a known size works, so a
// mmap'd flash partition or a plain file can serve as a region too.
package eeprom
