// Package consolesink provides a sink that writes flushed log bytes to
// an io.Writer, typically a console or serial stream.
//
// The sink reports no persisted size or capacity: a console is an
// unbounded, non-seekable stream, so the owning logger falls back to
// its staging figures.
package consolesink
