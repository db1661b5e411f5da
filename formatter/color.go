package formatter

// Color is an ANSI terminal escape sequence
type Color string

const (
	Reset     Color = "\033[0m"
	Bold      Color = "\033[1m"
	Red       Color = "\033[91m"
	Yellow    Color = "\033[93m"
	Highlight Color = "\033[44m"
)

// String returns the escape sequence
func (c Color) String() string {
	return string(c)
}

// Colorize wraps s in c and a trailing reset. Wrapping an already colorized
// string nests the styles.
func Colorize(c Color, s string) string {
	return string(c) + s + string(Reset)
}
