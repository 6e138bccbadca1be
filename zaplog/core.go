package zaplog

import (
	"go.uber.org/zap/zapcore"

	"github.com/embedlog/embedlog/core"
	"github.com/embedlog/embedlog/logger"
)

// Core is a zapcore.Core that stages encoded entries into an embedlog
// engine instead of writing them to a WriteSyncer. Code written against
// zap gets the engine's deferred, buffered delivery: entries accumulate
// in the staging ring and reach durable storage on Flush (zap's Sync).
type Core struct {
	zapcore.LevelEnabler
	enc zapcore.Encoder
	log *logger.Logger
}

// NewCore creates a staging core. The encoder renders each entry; the
// rendered bytes are staged at the embedlog level corresponding to the
// entry's zap level.
func NewCore(l *logger.Logger, enc zapcore.Encoder, enab zapcore.LevelEnabler) *Core {
	return &Core{LevelEnabler: enab, enc: enc, log: l}
}

// With implements zapcore.Core.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := &Core{
		LevelEnabler: c.LevelEnabler,
		enc:          c.enc.Clone(),
		log:          c.log,
	}
	for i := range fields {
		fields[i].AddTo(clone.enc)
	}
	return clone
}

// Check implements zapcore.Core.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write implements zapcore.Core. The encoded entry, newline included,
// is staged through the engine's ordinary admission path.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	c.log.Log(levelOf(ent.Level), "%s", buf.String())
	buf.Free()
	return nil
}

// Sync implements zapcore.Core by flushing the engine to its sink.
func (c *Core) Sync() error {
	return c.log.Flush()
}

// levelOf maps zap's ascending-severity levels onto embedlog's
// descending-severity ceiling scale.
func levelOf(l zapcore.Level) core.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return core.Debug
	case l == zapcore.InfoLevel:
		return core.Info
	case l == zapcore.WarnLevel:
		return core.Warning
	case l == zapcore.ErrorLevel:
		return core.Error
	default:
		return core.Critical
	}
}
