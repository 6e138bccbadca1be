package modlog

import (
	"github.com/embedlog/embedlog/core"
	"github.com/embedlog/embedlog/logger"
)

// Logger decorates a base engine with one log-level ceiling per module
// id, all beneath the base engine's global ceiling. A statement must
// pass its module ceiling here and the global ceiling in the base
// engine before it is staged.
type Logger struct {
	base   *logger.Logger
	levels []core.Level
}

// New wraps base with a table of moduleCount per-module ceilings, each
// initialized to the base engine's current global ceiling. The table
// size is fixed for the lifetime of the logger; module ids are
// 0..moduleCount-1 and out-of-range ids panic, as any slice index does.
func New(base *logger.Logger, moduleCount int) *Logger {
	levels := make([]core.Level, moduleCount)
	for i := range levels {
		levels[i] = base.Level()
	}
	return &Logger{base: base, levels: levels}
}

// Base returns the wrapped engine, for operations that are not
// module-scoped (Flush, Clear, SetAutoFlush, ...).
func (m *Logger) Base() *logger.Logger {
	return m.base
}

// ModuleCount returns the size of the per-module table.
func (m *Logger) ModuleCount() int {
	return len(m.levels)
}

// Level returns the ceiling for the given module.
func (m *Logger) Level(module int) core.Level {
	return m.levels[module]
}

// SetLevel sets the ceiling for the given module, clamped to the base
// engine's global ceiling at the time of the call. The table entry is
// independent storage: lowering the global ceiling later does not
// re-clamp existing entries. The resulting ceiling is returned.
func (m *Logger) SetLevel(module int, v core.Level) core.Level {
	if v > m.base.Level() {
		v = m.base.Level()
	}
	if v >= core.Off {
		m.levels[module] = v
	}
	return m.levels[module]
}

// Log stages a record when level passes the module's ceiling. The base
// engine applies its own global filtering on top.
func (m *Logger) Log(module int, level core.Level, format string, args ...any) {
	if m.admits(module, level) {
		m.base.Log(level, format, args...)
	}
}

// LogFromInterrupt is the interrupt-safe counterpart of Log.
func (m *Logger) LogFromInterrupt(module int, level core.Level, format string, args ...any) {
	if m.admits(module, level) {
		m.base.LogFromInterrupt(level, format, args...)
	}
}

func (m *Logger) admits(module int, level core.Level) bool {
	return level != core.Off && m.levels[module].Admits(level)
}

// Critical stages a module-scoped Critical record.
func (m *Logger) Critical(module int, format string, args ...any) {
	m.Log(module, core.Critical, format, args...)
}

// CriticalFromInterrupt stages a module-scoped Critical record via the
// interrupt-safe path.
func (m *Logger) CriticalFromInterrupt(module int, format string, args ...any) {
	m.LogFromInterrupt(module, core.Critical, format, args...)
}

// Error stages a module-scoped Error record.
func (m *Logger) Error(module int, format string, args ...any) {
	m.Log(module, core.Error, format, args...)
}

// ErrorFromInterrupt stages a module-scoped Error record via the
// interrupt-safe path.
func (m *Logger) ErrorFromInterrupt(module int, format string, args ...any) {
	m.LogFromInterrupt(module, core.Error, format, args...)
}

// Warning stages a module-scoped Warning record.
func (m *Logger) Warning(module int, format string, args ...any) {
	m.Log(module, core.Warning, format, args...)
}

// WarningFromInterrupt stages a module-scoped Warning record via the
// interrupt-safe path.
func (m *Logger) WarningFromInterrupt(module int, format string, args ...any) {
	m.LogFromInterrupt(module, core.Warning, format, args...)
}

// Info stages a module-scoped Info record.
func (m *Logger) Info(module int, format string, args ...any) {
	m.Log(module, core.Info, format, args...)
}

// InfoFromInterrupt stages a module-scoped Info record via the
// interrupt-safe path.
func (m *Logger) InfoFromInterrupt(module int, format string, args ...any) {
	m.LogFromInterrupt(module, core.Info, format, args...)
}

// Debug stages a module-scoped Debug record.
func (m *Logger) Debug(module int, format string, args ...any) {
	m.Log(module, core.Debug, format, args...)
}

// DebugFromInterrupt stages a module-scoped Debug record via the
// interrupt-safe path.
func (m *Logger) DebugFromInterrupt(module int, format string, args ...any) {
	m.LogFromInterrupt(module, core.Debug, format, args...)
}
