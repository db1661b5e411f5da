package writer

import "github.com/philipp01105/pdflog/core"

// LogWriter renders log records.
// Implementations must not retain the record after WriteMessage returns;
// callers may recycle it.
type LogWriter interface {
	// WriteMessage renders one record. A nil record is ignored.
	WriteMessage(record *core.Record) error
}

// Func adapts an ordinary function to LogWriter
type Func func(record *core.Record) error

// WriteMessage calls f(record)
func (f Func) WriteMessage(record *core.Record) error {
	if record == nil {
		return nil
	}
	return f(record)
}

type nopWriter struct{}

func (nopWriter) WriteMessage(*core.Record) error { return nil }

// Nop is a LogWriter that discards every record
var Nop LogWriter = nopWriter{}
