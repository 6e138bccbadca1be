package core

import "strings"

// Level represents the severity level of a log statement.
//
// Unlike most server-side logging frameworks, levels are ordered from most
// to least severe: a lower value always means a higher priority. A logger
// configured with ceiling C admits a statement at level L iff L <= C.
// Off is only ever used as a ceiling; no statement is emitted at Off.
type Level int8

const (
	// Off disables all log output when used as a ceiling
	Off Level = iota
	// Critical indicates the system is unusable or an unrecoverable error
	Critical
	// Error indicates an error condition
	Error
	// Warning indicates a warning condition
	Warning
	// Info for informational messages
	Info
	// Debug for debug-level messages
	Debug
)

// LevelCount is the number of defined levels, including Off.
const LevelCount = int(Debug) + 1

// Defaults applied by logger construction when the caller leaves the
// corresponding Config fields at their zero value.
const (
	// DefaultLevel is the initial runtime ceiling.
	DefaultLevel = Debug
	// DefaultCapacity is the staging buffer capacity in bytes.
	DefaultCapacity = 1024
)

// String returns the long name of the level.
func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Critical:
		return "critical"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return "unknown"
	}
}

// Tag returns the short marker used as the per-record prefix, e.g. "D"
// for Debug. Records are rendered as "<tag> message".
func (l Level) Tag() string {
	switch l {
	case Off:
		return "O"
	case Critical:
		return "!"
	case Error:
		return "E"
	case Warning:
		return "W"
	case Info:
		return "I"
	case Debug:
		return "D"
	default:
		return "?"
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= Off && l <= Debug
}

// Admits reports whether a statement at level stmt passes a ceiling of l.
func (l Level) Admits(stmt Level) bool {
	return stmt <= l
}

// ParseLevel converts a string to a Level. Unrecognized input returns
// the default level.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "off":
		return Off
	case "critical", "crit":
		return Critical
	case "error", "err":
		return Error
	case "warning", "warn":
		return Warning
	case "info":
		return Info
	case "debug":
		return Debug
	default:
		return DefaultLevel
	}
}
