package logger

import (
	"fmt"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/philipp01105/pdflog/core"
	"github.com/philipp01105/pdflog/handler"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	includeCaller bool
	callerSkip    int
	clock         xclock.Clock
	recycle       bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	includeCaller bool
	callerSkip    int
	clock         xclock.Clock
	recycle       bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // Default skip for getCaller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Pre-compute recycle to avoid interface assertion per call
	if rc, ok := h.(interface{ CanRecycleRecord() bool }); ok {
		b.recycle = rc.CanRecycleRecord()
	} else {
		b.recycle = false
	}
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithClock sets the time source (default: xclock.Default())
func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.clock = c
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		clock:         b.clock,
		recycle:       b.recycle,
	}
}

// IsLoggable reports whether a message at level would be published
func (l *Logger) IsLoggable(level core.Level) bool {
	return l.handler != nil && level.Enabled(l.level)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) {
	// Level check optimization - exit early BEFORE any allocations
	if !level.Enabled(l.level) {
		return
	}
	l.log(level, msg)
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	if !level.Enabled(l.level) {
		return
	}
	l.log(level, fmt.Sprintf(format, args...))
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// log is the internal logging method
func (l *Logger) log(level core.Level, msg string) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	// Get record from pool AFTER level check
	r := core.GetRecord()
	r.Time = l.now()
	r.Level = level
	r.Message = msg

	if l.includeCaller {
		r.Caller = core.GetCaller(l.callerSkip)
	}

	err := l.handler.Publish(r)
	if err != nil {
		return
	}

	// Return record to pool if handler supports it
	if l.recycle {
		core.PutRecord(r)
	}
}

// Severe logs a message at SEVERE level
func (l *Logger) Severe(msg string) {
	if !core.SevereLevel.Enabled(l.level) {
		return
	}
	l.log(core.SevereLevel, msg)
}

// Warning logs a message at WARNING level
func (l *Logger) Warning(msg string) {
	if !core.WarningLevel.Enabled(l.level) {
		return
	}
	l.log(core.WarningLevel, msg)
}

// Info logs a message at INFO level
func (l *Logger) Info(msg string) {
	if !core.InfoLevel.Enabled(l.level) {
		return
	}
	l.log(core.InfoLevel, msg)
}

// Config logs a message at CONFIG level
func (l *Logger) Config(msg string) {
	if !core.ConfigLevel.Enabled(l.level) {
		return
	}
	l.log(core.ConfigLevel, msg)
}

// Fine logs a message at FINE level
func (l *Logger) Fine(msg string) {
	if !core.FineLevel.Enabled(l.level) {
		return
	}
	l.log(core.FineLevel, msg)
}

// Finer logs a message at FINER level
func (l *Logger) Finer(msg string) {
	if !core.FinerLevel.Enabled(l.level) {
		return
	}
	l.log(core.FinerLevel, msg)
}

// Finest logs a message at FINEST level
func (l *Logger) Finest(msg string) {
	if !core.FinestLevel.Enabled(l.level) {
		return
	}
	l.log(core.FinestLevel, msg)
}

// Severef logs a formatted message at SEVERE level
func (l *Logger) Severef(format string, args ...interface{}) {
	if !core.SevereLevel.Enabled(l.level) {
		return
	}
	l.log(core.SevereLevel, fmt.Sprintf(format, args...))
}

// Warningf logs a formatted message at WARNING level
func (l *Logger) Warningf(format string, args ...interface{}) {
	if !core.WarningLevel.Enabled(l.level) {
		return
	}
	l.log(core.WarningLevel, fmt.Sprintf(format, args...))
}

// Infof logs a formatted message at INFO level
func (l *Logger) Infof(format string, args ...interface{}) {
	if !core.InfoLevel.Enabled(l.level) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Finef logs a formatted message at FINE level
func (l *Logger) Finef(format string, args ...interface{}) {
	if !core.FineLevel.Enabled(l.level) {
		return
	}
	l.log(core.FineLevel, fmt.Sprintf(format, args...))
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
