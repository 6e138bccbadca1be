package logger

import (
	"os"
	"sync"

	"github.com/embedlog/embedlog/core"
	"github.com/embedlog/embedlog/sink/consolesink"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The out-of-the-box logger stages into a console sink so that
	// importing the package and calling Info just works. Applications
	// with real storage call SetDefault during bring-up.
	l, err := New(consolesink.New(consolesink.Config{Writer: os.Stdout}), Config{})
	if err != nil {
		panic(err)
	}
	defaultLogger = l
}

// Default returns the process-wide logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger. Call once during
// bring-up, before any goroutine uses the package-level helpers.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger.

// Critical stages a Critical record on the default logger.
func Critical(format string, args ...any) {
	Default().Critical(format, args...)
}

// Error stages an Error record on the default logger.
func Error(format string, args ...any) {
	Default().Error(format, args...)
}

// Warning stages a Warning record on the default logger.
func Warning(format string, args ...any) {
	Default().Warning(format, args...)
}

// Info stages an Info record on the default logger.
func Info(format string, args ...any) {
	Default().Info(format, args...)
}

// Debug stages a Debug record on the default logger.
func Debug(format string, args ...any) {
	Default().Debug(format, args...)
}

// Log stages a record at the given level on the default logger.
func Log(level core.Level, format string, args ...any) {
	Default().Log(level, format, args...)
}

// Flush exports the default logger's staged bytes.
func Flush() error {
	return Default().Flush()
}

// Clear discards the default logger's staged bytes.
func Clear() {
	Default().Clear()
}
