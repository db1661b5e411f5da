package handler

import (
	"sync/atomic"

	"github.com/philipp01105/pdflog/core"
	"github.com/philipp01105/pdflog/writer"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Publish processes a log record
	Publish(record *core.Record) error

	// Flush flushes any buffered output
	Flush() error

	// Close closes the handler and releases resources
	Close() error
}

// writerRef boxes a LogWriter so it can live in an atomic.Pointer
type writerRef struct {
	w writer.LogWriter
}

// Adapter forwards published records to a LogWriter.
// The zero value is ready to use and has no writer.
type Adapter struct {
	writer atomic.Pointer[writerRef]
}

// NewAdapter creates an adapter forwarding to w, which may be nil.
func NewAdapter(w writer.LogWriter) *Adapter {
	a := &Adapter{}
	a.SetWriter(w)
	return a
}

// SetWriter replaces the current writer. The adapter does not own the
// writer's lifecycle.
func (a *Adapter) SetWriter(w writer.LogWriter) {
	if w == nil {
		a.writer.Store(nil)
		return
	}
	a.writer.Store(&writerRef{w: w})
}

// Writer returns the current writer, or nil
func (a *Adapter) Writer() writer.LogWriter {
	if ref := a.writer.Load(); ref != nil {
		return ref.w
	}
	return nil
}

// Publish forwards record to the current writer
func (a *Adapter) Publish(record *core.Record) error {
	ref := a.writer.Load()
	if ref == nil || record == nil {
		return nil
	}
	return ref.w.WriteMessage(record)
}

// CanRecycleRecord returns true because writers finish with a record
// before WriteMessage returns.
func (a *Adapter) CanRecycleRecord() bool {
	return true
}

// Flush is a no-op
func (a *Adapter) Flush() error {
	return nil
}

// Close is a no-op
func (a *Adapter) Close() error {
	return nil
}
