// Package zaplog bridges go.uber.org/zap into the embedlog engine.
//
// NewCore returns a zapcore.Core whose entries are staged in an
// embedlog ring buffer rather than written straight to an output, so
// structured zap logging can be used on targets where every write must
// be deferred to an explicit flush point. zap's Sync maps to the
// engine's Flush.
package zaplog
