package logger

import (
	"strconv"
	"strings"

	"github.com/philipp01105/pdflog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	AllLevel     = core.AllLevel
	FinestLevel  = core.FinestLevel
	FinerLevel   = core.FinerLevel
	FineLevel    = core.FineLevel
	ConfigLevel  = core.ConfigLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	SevereLevel  = core.SevereLevel
	OffLevel     = core.OffLevel
)

// ParseLevel converts a string to a Level. Numeric strings are accepted as
// custom levels; anything unrecognized falls back to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ALL":
		return AllLevel
	case "FINEST", "TRACE":
		return FinestLevel
	case "FINER":
		return FinerLevel
	case "FINE", "DEBUG":
		return FineLevel
	case "CONFIG":
		return ConfigLevel
	case "INFO":
		return InfoLevel
	case "WARNING", "WARN":
		return WarningLevel
	case "SEVERE", "ERROR":
		return SevereLevel
	case "OFF":
		return OffLevel
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32); err == nil {
		return Level(n)
	}
	return InfoLevel
}
