package handler

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"github.com/philipp01105/pdflog/core"
)

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// This allows pdflog to serve as the backend of log/slog.
type SlogHandler struct {
	handler Handler
	level   core.Level
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
// Records below level are discarded.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level).Enabled(s.level)
}

// Handle converts a slog.Record to a core.Record and publishes it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	t := record.Time
	if t.IsZero() {
		t = time.Now()
	}
	r := core.NewRecordAt(slogLevelToCore(record.Level), t, record.Message)
	if record.PC != 0 {
		r.Caller = callerFromPC(record.PC)
	}
	return s.handler.Publish(r)
}

// WithAttrs returns the handler unchanged; attributes are not rendered.
func (s *SlogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup returns the handler unchanged; groups are not rendered.
func (s *SlogHandler) WithGroup(_ string) slog.Handler {
	return s
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.SevereLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.FineLevel
	default:
		return core.FinestLevel
	}
}

func callerFromPC(pc uintptr) core.CallerInfo {
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return core.CallerInfo{}
	}
	return core.CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}
