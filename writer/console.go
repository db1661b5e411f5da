package writer

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/pdflog/core"
	"github.com/philipp01105/pdflog/formatter"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
type lockedWriter struct {
	mu *sync.Mutex // points to the console writer's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the console writer to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// Config holds configuration for the console writer
type Config struct {
	// Output to write to (default: os.Stdout)
	Output io.Writer
	// Color selects the colored or the no-color format (default: ColorAuto)
	Color ColorMode
	// Location for timestamps (default: time.Local)
	Location *time.Location
	// Formatter overrides the formatter chosen by Color
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Output supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File; set true for other
	// goroutine-safe writers.
	ConcurrentWriter bool
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Formatter == nil {
		fcfg := formatter.Config{
			Location: cfg.Location,
			NoColor:  !cfg.Color.enabled(cfg.Output),
		}
		cfg.Formatter = formatter.NewConsoleFormatter(fcfg)
	}
}

// ConsoleWriter formats each record into a single line on its output
type ConsoleWriter struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool // true if writer is safe for concurrent Write calls
	stats           *Stats
	mu              sync.Mutex // protects syncBuf and writer (single lock)
	lw              lockedWriter
	syncBuf         bytes.Buffer
	parBufPool      sync.Pool // pool of *bytes.Buffer for the contended path
}

// New creates a console writer from cfg.
func New(cfg Config) *ConsoleWriter {
	applyDefaults(&cfg)

	w := &ConsoleWriter{
		writer:         cfg.Output,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Output),
		stats:          NewStats(),
	}

	// Cache optional formatter interfaces for the allocation-free paths
	w.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	w.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	w.lw = lockedWriter{mu: &w.mu, w: w.writer}

	if w.bufferFormatter != nil {
		w.syncBuf.Grow(256)
		w.parBufPool = sync.Pool{
			New: func() interface{} {
				b := new(bytes.Buffer)
				b.Grow(256)
				return b
			},
		}
	}

	return w
}

// NewConsoleWriter creates a colored writer on os.Stdout
func NewConsoleWriter() *ConsoleWriter {
	return New(Config{Color: ColorAlways})
}

// NewNoColorWriter creates a writer on os.Stdout that emits no escape codes
func NewNoColorWriter() *ConsoleWriter {
	return New(Config{Color: ColorNever})
}

// WriteMessage formats record and writes it as one line.
// Uses TryLock on mu to format into the writer-owned buffer when uncontended.
// When contended, formats into a pooled buffer outside the lock and only
// serializes the Write itself.
func (w *ConsoleWriter) WriteMessage(record *core.Record) error {
	if record == nil {
		return nil
	}

	if w.bufferFormatter != nil {
		if w.mu.TryLock() {
			w.syncBuf.Reset()
			w.bufferFormatter.FormatRecord(record, &w.syncBuf)
			_, err := w.writer.Write(w.syncBuf.Bytes())
			w.mu.Unlock()
			w.stats.record(err)
			return err
		}

		buf := w.parBufPool.Get().(*bytes.Buffer)
		buf.Reset()
		w.bufferFormatter.FormatRecord(record, buf)
		var err error
		if w.concurrentSafe {
			_, err = w.writer.Write(buf.Bytes())
		} else {
			w.mu.Lock()
			_, err = w.writer.Write(buf.Bytes())
			w.mu.Unlock()
		}
		w.parBufPool.Put(buf)
		w.stats.record(err)
		return err
	}

	if w.writerFormatter != nil {
		var err error
		if w.concurrentSafe {
			err = w.writerFormatter.FormatTo(record, w.writer)
		} else {
			err = w.writerFormatter.FormatTo(record, &w.lw)
		}
		w.stats.record(err)
		return err
	}

	data, err := w.formatter.Format(record)
	if err != nil {
		w.stats.IncrementFailed()
		return err
	}

	if w.concurrentSafe {
		_, err = w.writer.Write(data)
	} else {
		_, err = w.lw.Write(data)
	}
	w.stats.record(err)
	return err
}

// Stats returns a snapshot of the current statistics
func (w *ConsoleWriter) Stats() Snapshot {
	return w.stats.GetSnapshot()
}
