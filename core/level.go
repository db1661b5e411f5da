package core

import (
	"math"
	"strconv"
)

// Level represents the severity level of a log record.
// Higher values are more severe.
type Level int32

const (
	// AllLevel is a threshold that enables every record
	AllLevel Level = math.MinInt32
	// FinestLevel for highly detailed tracing
	FinestLevel Level = 300
	// FinerLevel for fairly detailed tracing
	FinerLevel Level = 400
	// FineLevel for tracing information
	FineLevel Level = 500
	// ConfigLevel for static configuration messages
	ConfigLevel Level = 700
	// InfoLevel for informational messages (default)
	InfoLevel Level = 800
	// WarningLevel for potential problems
	WarningLevel Level = 900
	// SevereLevel for serious failures
	SevereLevel Level = 1000
	// OffLevel is a threshold that disables every record
	OffLevel Level = math.MaxInt32
)

// String returns the level name. Values outside the named set are rendered
// as their decimal number.
func (l Level) String() string {
	switch l {
	case SevereLevel:
		return "SEVERE"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case ConfigLevel:
		return "CONFIG"
	case FineLevel:
		return "FINE"
	case FinerLevel:
		return "FINER"
	case FinestLevel:
		return "FINEST"
	case AllLevel:
		return "ALL"
	case OffLevel:
		return "OFF"
	default:
		return strconv.FormatInt(int64(l), 10)
	}
}

// Enabled reports whether a record at level l passes the threshold min.
func (l Level) Enabled(min Level) bool {
	return l != OffLevel && min != OffLevel && l >= min
}
