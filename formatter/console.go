package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/pdflog/core"
)

// TimeLayout is the timestamp layout of every line (HH:MM:SS.mmm, 24h)
const TimeLayout = "15:04:05.000"

// linePrefix starts every rendered line
const linePrefix = "PDF: "

// ConsoleFormatter formats log records as single console lines
type ConsoleFormatter struct {
	Config
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(cfg Config) *ConsoleFormatter {
	return &ConsoleFormatter{Config: cfg}
}

// NewPlainFormatter creates a console formatter that emits no escape codes
func NewPlainFormatter(cfg Config) *ConsoleFormatter {
	cfg.NoColor = true
	return &ConsoleFormatter{Config: cfg}
}

// Format formats a record as a console line
func (f *ConsoleFormatter) Format(record *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(record, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *ConsoleFormatter) FormatTo(record *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(record, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter).
func (f *ConsoleFormatter) FormatRecord(record *core.Record, buf *bytes.Buffer) {
	f.formatToBuffer(record, buf)
}

// pre-colored level tokens for the two styled severities
var (
	severeToken  = Colorize(Red, core.SevereLevel.String())
	warningToken = Colorize(Yellow, core.WarningLevel.String())
)

// formatToBuffer writes the formatted record into the given buffer
func (f *ConsoleFormatter) formatToBuffer(record *core.Record, buf *bytes.Buffer) {
	buf.WriteString(linePrefix)

	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(f.localTime(record.Time).AppendFormat(buf.AvailableBuffer(), TimeLayout))
	buf.WriteByte('\t')

	tag, rest := Classify(record.Message)

	if f.NoColor {
		buf.WriteString(record.Level.String())
		buf.WriteByte('\t')
		buf.WriteString(tag.Label())
		buf.WriteString(rest)
		buf.WriteByte('\n')
		return
	}

	// Tagged lines layer the highlight on top of the severity color
	if tag != TagNone {
		buf.WriteString(string(Highlight))
	}
	buf.WriteString(levelToken(record.Level))
	if tag != TagNone {
		buf.WriteString(string(Reset))
	}
	buf.WriteByte('\t')

	if tag != TagNone {
		buf.WriteString(string(tag.color()))
		buf.WriteString(tag.Label())
		buf.WriteString(string(Reset))
	}
	buf.WriteString(rest)
	buf.WriteByte('\n')
}

func (f *ConsoleFormatter) localTime(t time.Time) time.Time {
	if f.Location != nil {
		return t.In(f.Location)
	}
	return t.Local()
}

func levelToken(level core.Level) string {
	switch level {
	case core.SevereLevel:
		return severeToken
	case core.WarningLevel:
		return warningToken
	default:
		return level.String()
	}
}

// FormatTime renders t as HH:MM:SS.mmm in the local time zone
func FormatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

// FormatLevel renders the colored level token. Tagged lines are
// additionally wrapped in Highlight.
func FormatLevel(level core.Level, tag Tag) string {
	token := levelToken(level)
	if tag != TagNone {
		return Colorize(Highlight, token)
	}
	return token
}

// FormatMessage renders msg with its tag, if any, uppercased and colored.
func FormatMessage(msg string) string {
	tag, rest := Classify(msg)
	if tag == TagNone {
		return msg
	}
	return Colorize(tag.color(), tag.Label()) + rest
}
