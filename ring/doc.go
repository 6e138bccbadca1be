// Package ring implements the fixed-capacity circular byte buffer that
// stages pending log bytes before they are flushed to a sink.
//
// The buffer itself always operates in ring-overwrite mode: Put on a
// full buffer drops the oldest byte. Loss-averse policies (overrun
// detection, flush-before-write) are layered on top by the logger
// engine, which checks Full before staging.
//
// Segments exposes the live region as at most two contiguous slices so
// that block-oriented sinks (files, EEPROM windows) can export the whole
// buffer in one or two writes instead of one call per byte.
package ring
