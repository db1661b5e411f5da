package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Record represents a log record with all its metadata
type Record struct {
	Time     time.Time
	Level    Level
	Message  string
	Sequence uint64
	Caller   CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// sequence is the last sequence number handed out
var sequence atomic.Uint64

func nextSequence() uint64 {
	return sequence.Add(1)
}

// NewRecord creates a record from a timestamp in milliseconds since the Unix epoch.
func NewRecord(level Level, millis int64, msg string) *Record {
	return NewRecordAt(level, time.UnixMilli(millis), msg)
}

// NewRecordAt creates a record with the given timestamp
func NewRecordAt(level Level, t time.Time, msg string) *Record {
	return &Record{
		Time:     t,
		Level:    level,
		Message:  msg,
		Sequence: nextSequence(),
	}
}

// Millis returns the record timestamp in milliseconds since the Unix epoch
func (r *Record) Millis() int64 {
	return r.Time.UnixMilli()
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool with a fresh sequence number.
// The caller sets Time, Level and Message.
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Sequence = nextSequence()
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
