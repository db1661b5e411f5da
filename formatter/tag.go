package formatter

import "strings"

// Tag identifies messages forwarded from an embedded JavaScript engine
type Tag uint8

const (
	// TagNone marks an ordinary message
	TagNone Tag = iota
	// TagJSLog marks console output of a script ("JSlog:")
	TagJSLog
	// TagJSError marks a script error ("JSerror:")
	TagJSError
)

const (
	jsLogPrefix   = "JSlog:"
	jsErrorPrefix = "JSerror:"
)

// Prefix returns the literal message prefix of the tag
func (t Tag) Prefix() string {
	switch t {
	case TagJSLog:
		return jsLogPrefix
	case TagJSError:
		return jsErrorPrefix
	default:
		return ""
	}
}

// Label returns the prefix as it is rendered in output
func (t Tag) Label() string {
	switch t {
	case TagJSLog:
		return "JSLOG:"
	case TagJSError:
		return "JSERROR:"
	default:
		return ""
	}
}

func (t Tag) String() string {
	switch t {
	case TagJSLog:
		return "JSlog"
	case TagJSError:
		return "JSerror"
	default:
		return "none"
	}
}

// color is the style applied to the rendered label
func (t Tag) color() Color {
	if t == TagJSError {
		return Red
	}
	return Bold
}

// Classify reports which tag msg starts with, and the text after it.
// JSlog: is checked before JSerror:. Matching is case-sensitive.
func Classify(msg string) (Tag, string) {
	if rest, ok := strings.CutPrefix(msg, jsLogPrefix); ok {
		return TagJSLog, rest
	}
	if rest, ok := strings.CutPrefix(msg, jsErrorPrefix); ok {
		return TagJSError, rest
	}
	return TagNone, msg
}
