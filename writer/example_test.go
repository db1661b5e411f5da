package writer_test

import (
	"os"
	"time"

	"github.com/philipp01105/pdflog/core"
	"github.com/philipp01105/pdflog/writer"
)

// Write a record without colors to stdout.
func ExampleNew() {
	w := writer.New(writer.Config{
		Output:   os.Stdout,
		Color:    writer.ColorNever,
		Location: time.UTC,
	})

	millis := time.Date(2026, 1, 15, 9, 30, 0, 5*int(time.Millisecond), time.UTC).UnixMilli()
	w.WriteMessage(core.NewRecord(core.SevereLevel, millis, "JSerror:TypeError: undefined"))
	// Output:
	// PDF: 09:30:00.005	SEVERE	JSERROR:TypeError: undefined
}
