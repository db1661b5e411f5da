package logger_test

import (
	"os"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/philipp01105/pdflog/handler"
	"github.com/philipp01105/pdflog/logger"
	"github.com/philipp01105/pdflog/writer"
)

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Info("Renderer started")
	logger.Warningf("font %q not found, using fallback", "Frutiger")
}

// Create a custom Logger with the Builder pattern.
func ExampleNewBuilder() {
	w := writer.New(writer.Config{
		Output:   os.Stdout,
		Color:    writer.ColorNever,
		Location: time.UTC,
	})

	log := logger.NewBuilder().
		WithHandler(handler.NewAdapter(w)).
		WithLevel(logger.FineLevel).
		WithClock(xclock.NewFrozen(time.Date(2026, 1, 15, 8, 15, 30, 120*int(time.Millisecond), time.UTC))).
		Build()

	log.Fine("JSlog:document ready")
	log.Severe("JSerror:Uncaught TypeError")
	log.Close()
	// Output:
	// PDF: 08:15:30.120	FINE	JSLOG:document ready
	// PDF: 08:15:30.120	SEVERE	JSERROR:Uncaught TypeError
}
