// Package sloglog adapts an embedlog engine to the standard library's
// log/slog interface. Records are rendered to single text lines and
// staged through the engine's ordinary admission path, so they reach
// the sink on Flush rather than immediately.
package sloglog
