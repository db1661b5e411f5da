// Package logger is a small host logging framework that publishes records
// through pdflog. Programs that do not already use log/slog or zap only
// need to import this package.
//
// A Logger is immutable after construction. The handler, level, caller
// setting and clock are set once via the Builder and never modified, so a
// Logger is safe for concurrent use without locking on the read path.
//
// The package initializes a default Logger (INFO level, console writer on
// stdout, colors when stdout is a terminal) in init(). The package-level
// functions Info, Warning, Severef, etc. delegate to this default instance:
//
//	logger.Info("render started")
//	logger.Severe("JSerror:ReferenceError: foo is not defined")
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(handler.NewAdapter(w)).
//	    WithLevel(logger.FineLevel).
//	    WithCaller(true).
//	    Build()
//
// Record timestamps come from github.com/trickstertwo/xclock. Without an
// explicit WithClock the process default clock is used, so tests can freeze
// time with xclock.SetDefault.
//
// Level checks happen before any allocation, so filtered-out
// messages cost only a single integer comparison.
package logger
