// Package logger implements the buffered logging engine: leveled,
// printf-style statements are rendered into a fixed-capacity circular
// staging buffer and later exported in bulk to a pluggable sink.
//
// The engine exists for targets where log output must never block the
// code that produces it. A statement costs a level comparison and a
// formatted write into RAM; the potentially slow storage write happens
// only inside Flush, either called explicitly or triggered by the
// auto-flush behavior when the staging buffer fills.
//
// The FromInterrupt entry points give interrupt-style callers a path
// that is guaranteed free of storage I/O: auto-flush and echo are
// forced off for the duration of the call and restored on return.
// Restoring deliberately does not flush, so data staged from an
// interrupt waits for the next ordinary statement or an explicit Flush.
//
// When auto-flush is off and the buffer fills, the engine refuses to
// overwrite staged data: the incoming byte is dropped and an overrun
// flag raised. The next successful Flush appends a critical-level
// "buffer overrun detected" record to the stream, so a reader of the
// persisted log can see that data between two flush points was lost.
// The alternative DropOldest policy turns the staging buffer into a
// pure ring that keeps the newest data, for console-only loggers that
// accept silent loss.
//
// Concurrency: a Logger performs no internal locking. It targets the
// single-core cooperative model of its embedded origins - one owning
// goroutine, with LogFromInterrupt available for reentrant callbacks on
// that same flow of control. Message bytes from a caller that preempts
// a partially rendered statement may interleave with it; callers that
// need atomic records on a multi-goroutine platform must serialize
// access externally. Sinks, in contrast, guard their own writes.
package logger
