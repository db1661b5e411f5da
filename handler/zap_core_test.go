package handler

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/pdflog/core"
	"github.com/philipp01105/pdflog/writer"
)

func TestZapCore_Logger(t *testing.T) {
	var buf bytes.Buffer
	a := NewAdapter(writer.New(writer.Config{Output: &buf, Color: writer.ColorAlways}))

	log := zap.New(NewZapCore(a, zapcore.DebugLevel))
	log.Warn("JSlog:hello", zap.String("ignored", "field"))
	log.Info("plain text")
	log.Debug("fine detail")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "\t\033[44m\033[93mWARNING\033[0m\033[0m\t\033[1mJSLOG:\033[0mhello") {
		t.Errorf("Unexpected warning line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "\tINFO\tplain text") {
		t.Errorf("Unexpected info line: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "\tFINE\tfine detail") {
		t.Errorf("Unexpected debug line: %q", lines[2])
	}
	if strings.Contains(buf.String(), "ignored") {
		t.Error("Fields should not be rendered")
	}
}

func TestZapCore_LevelEnabler(t *testing.T) {
	rec := writer.NewRecorder()
	log := zap.New(NewZapCore(NewAdapter(rec), nil))

	log.Debug("filtered")
	log.Info("kept")
	log.With(zap.Int("n", 1)).Error("kept too")

	got := rec.Records()
	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	if got[1].Level != core.SevereLevel {
		t.Errorf("Expected SEVERE, got %v", got[1].Level)
	}
}

func TestZapCore_WriteKeepsTimeAndCaller(t *testing.T) {
	rec := writer.NewRecorder()
	c := NewZapCore(NewAdapter(rec), zapcore.DebugLevel)

	ft := time.Date(2026, 1, 1, 13, 5, 7, 42*int(time.Millisecond), time.UTC)
	err := c.Write(zapcore.Entry{
		Level:   zapcore.ErrorLevel,
		Time:    ft,
		Message: "JSerror:oops",
		Caller:  zapcore.NewEntryCaller(0, "/src/app/render.go", 12, true),
	}, nil)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got := rec.Records()[0]
	if !got.Time.Equal(ft) || got.Millis() != ft.UnixMilli() {
		t.Errorf("Expected time %v, got %v", ft, got.Time)
	}
	if got.Caller.ShortFile != "render.go" || got.Caller.Line != 12 {
		t.Errorf("Unexpected caller: %+v", got.Caller)
	}
}

func TestZapCore_CallerFromLogger(t *testing.T) {
	rec := writer.NewRecorder()
	log := zap.New(NewZapCore(NewAdapter(rec), zapcore.InfoLevel), zap.AddCaller())

	log.Info("where")

	got := rec.Records()[0]
	if !got.Caller.Defined || got.Caller.ShortFile != "zap_core_test.go" {
		t.Errorf("Expected caller in zap_core_test.go, got %+v", got.Caller)
	}
}

func TestZapCore_ErrorsAndSync(t *testing.T) {
	a := NewAdapter(writer.Func(func(*core.Record) error {
		return errors.New("write failed")
	}))
	c := NewZapCore(a, zapcore.InfoLevel)

	if err := c.Write(zapcore.Entry{Level: zapcore.InfoLevel, Message: "x"}, nil); err == nil {
		t.Error("Expected writer error from Write")
	}
	if err := c.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}

func TestZapLevelToCore(t *testing.T) {
	tests := []struct {
		zapLevel  zapcore.Level
		coreLevel core.Level
	}{
		{zapcore.DebugLevel, core.FineLevel},
		{zapcore.InfoLevel, core.InfoLevel},
		{zapcore.WarnLevel, core.WarningLevel},
		{zapcore.ErrorLevel, core.SevereLevel},
		{zapcore.DPanicLevel, core.SevereLevel},
		{zapcore.PanicLevel, core.SevereLevel},
		{zapcore.FatalLevel, core.SevereLevel},
	}

	for _, tt := range tests {
		if got := zapLevelToCore(tt.zapLevel); got != tt.coreLevel {
			t.Errorf("zapLevelToCore(%v) = %v, want %v", tt.zapLevel, got, tt.coreLevel)
		}
	}
}
