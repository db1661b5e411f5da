package logger

import (
	"sync"

	"github.com/philipp01105/pdflog/core"
	"github.com/philipp01105/pdflog/handler"
	"github.com/philipp01105/pdflog/writer"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a console writer on stdout
	a := handler.NewAdapter(writer.New(writer.Config{}))

	defaultLogger = NewBuilder().
		WithHandler(a).
		WithLevel(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Severe logs a SEVERE message using the default logger
func Severe(msg string) {
	Default().Severe(msg)
}

// Warning logs a WARNING message using the default logger
func Warning(msg string) {
	Default().Warning(msg)
}

// Info logs an INFO message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Config logs a CONFIG message using the default logger
func Config(msg string) {
	Default().Config(msg)
}

// Fine logs a FINE message using the default logger
func Fine(msg string) {
	Default().Fine(msg)
}

// Severef logs a formatted SEVERE message using the default logger
func Severef(format string, args ...interface{}) {
	Default().Severef(format, args...)
}

// Warningf logs a formatted WARNING message using the default logger
func Warningf(format string, args ...interface{}) {
	Default().Warningf(format, args...)
}

// Infof logs a formatted INFO message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}
