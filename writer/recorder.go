package writer

import (
	"sync"

	"github.com/philipp01105/pdflog/core"
)

// Recorder is a LogWriter that keeps a copy of every record it receives
type Recorder struct {
	mu      sync.Mutex
	records []core.Record
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// WriteMessage stores a copy of record, so pooled records may be reused by the caller
func (r *Recorder) WriteMessage(record *core.Record) error {
	if record == nil {
		return nil
	}
	r.mu.Lock()
	r.records = append(r.records, *record)
	r.mu.Unlock()
	return nil
}

// Records returns the recorded records in arrival order
func (r *Recorder) Records() []core.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of recorded records
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset drops all recorded records
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}
