package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/pdflog/core"
	"github.com/philipp01105/pdflog/writer"
)

// countingWriter is a LogWriter that only counts records
type countingWriter struct {
	n atomic.Uint64
}

func newCountingWriter() *countingWriter {
	return &countingWriter{}
}

func (w *countingWriter) WriteMessage(r *core.Record) error {
	_ = len(r.Message)
	w.n.Add(1)
	return nil
}

var _ writer.LogWriter = (*countingWriter)(nil)
