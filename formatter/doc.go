// Package formatter renders log records into console lines.
//
// Every line has the same shape:
//
//	PDF: 13:05:07.042\tWARNING\tmessage
//
// The timestamp is local wall-clock time with millisecond precision. SEVERE
// levels are wrapped in red, WARNING in yellow. Messages that start with
// one of the sub-process tags (JSlog: or JSerror:) get the tag uppercased
// and styled, and the level token is additionally wrapped in a highlight.
// Colors nest by wrapping an already wrapped string again; every wrap
// appends its own reset.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which appends into a caller-provided buffer. The
// ConsoleFormatter implements all three. It uses a pooled bytes.Buffer
// internally and Go's Append-style time formatting to keep the write path
// free of intermediate strings.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
