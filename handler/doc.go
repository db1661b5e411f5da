// Package handler connects host logging frameworks to a writer.LogWriter.
//
// Adapter is the extension point: it receives records through Publish and
// forwards each one, unchanged, to the configured writer. Without a writer
// Publish is a silent no-op. Flush and Close exist for frameworks that
// expect them; there is no buffering and nothing to release.
//
// The writer is held in an atomic pointer, so SetWriter may be called while
// other goroutines publish. Each Publish uses whichever writer was current
// when it started.
//
// Bridges:
//
//   - SlogHandler implements log/slog.Handler on top of a Handler.
//   - ZapCore implements go.uber.org/zap/zapcore.Core on top of a Handler.
//
// Both map their native levels onto core.Level and keep the record time and
// caller. Attributes and fields are accepted but not rendered, because the
// console line has no place for them.
package handler
