package writer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode selects between the colored and the no-color console writer
type ColorMode int

const (
	// ColorAuto colors output written to a terminal (default)
	ColorAuto ColorMode = iota
	// ColorAlways always emits escape codes
	ColorAlways
	// ColorNever never emits escape codes
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts a string to a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "true", "on", "yes":
		return ColorAlways, nil
	case "never", "false", "off", "no":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("writer: unknown color mode %q", s)
	}
}

// fdWriter is implemented by *os.File
type fdWriter interface {
	Fd() uintptr
}

// enabled reports whether output to w should be colored
func (m ColorMode) enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
