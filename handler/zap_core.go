package handler

import (
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/pdflog/core"
)

// ZapCore implements zapcore.Core on top of a Handler, so a *zap.Logger can
// publish through pdflog:
//
//	log := zap.New(handler.NewZapCore(adapter, zapcore.InfoLevel))
type ZapCore struct {
	zapcore.LevelEnabler
	handler Handler
}

// NewZapCore creates a core publishing to h. A nil enabler defaults to
// zapcore.InfoLevel.
func NewZapCore(h Handler, enab zapcore.LevelEnabler) *ZapCore {
	if enab == nil {
		enab = zapcore.InfoLevel
	}
	return &ZapCore{LevelEnabler: enab, handler: h}
}

// With returns the core unchanged; fields are not rendered.
func (c *ZapCore) With(_ []zapcore.Field) zapcore.Core {
	return c
}

// Check adds the core to ce when the entry level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write publishes the entry. Fields are ignored.
func (c *ZapCore) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	r := core.NewRecordAt(zapLevelToCore(ent.Level), ent.Time, ent.Message)
	if ent.Caller.Defined {
		r.Caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: filepath.Base(ent.Caller.File),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Defined:   true,
		}
	}
	return c.handler.Publish(r)
}

// Sync flushes the handler
func (c *ZapCore) Sync() error {
	return c.handler.Flush()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.SevereLevel
	case level == zapcore.WarnLevel:
		return core.WarningLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.FineLevel
	}
}
