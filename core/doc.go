// Package core defines the shared types used across pdflog.
//
// It provides the Level type, modelled on the java.util.logging severity
// set, and the Record type that represents a single log event as it travels
// from a host logging framework to a writer.
//
// Records are pooled via sync.Pool for the logger hot path. Callers get a
// Record with GetRecord and may return it with PutRecord once the handler
// has consumed it. Every record receives a process-wide sequence number when
// it is created, so output produced by concurrent goroutines can still be
// ordered after the fact.
//
// Handlers and writers only read records. Nothing in this module mutates a
// Record after it has been published.
package core
