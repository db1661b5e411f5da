// Package writer provides the LogWriter capability: something that takes a
// log record and renders it somewhere.
//
// Variants:
//
//   - ConsoleWriter formats each record into one line and writes it to any
//     io.Writer (default: os.Stdout) with a single Write call. The colored
//     and the no-color flavour differ only in their formatter.
//   - Nop discards every record.
//   - Recorder keeps copies of the records it receives, for tests.
//   - Func adapts a plain function.
//
// New picks the console flavour from a ColorMode. ColorAuto enables colors
// only when the output is a terminal and NO_COLOR is not set.
//
// ConsoleWriter is safe for concurrent use. A line is always fully built
// before it is written. Writers that are not known to tolerate concurrent
// Write calls (anything other than *os.File and io.Discard) are serialized
// with a mutex.
package writer
