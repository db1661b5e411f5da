package writer

import (
	"bytes"
	"os"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{"on", ColorAlways, false},
		{" never ", ColorNever, false},
		{"false", ColorNever, false},
		{"rainbow", ColorAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorMode_StringRoundTrip(t *testing.T) {
	for _, m := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
		got, err := ParseColorMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseColorMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if ColorMode(42).String() != "unknown" {
		t.Errorf("Expected unknown, got %q", ColorMode(42).String())
	}
}

func TestColorMode_Enabled(t *testing.T) {
	var buf bytes.Buffer

	if !ColorAlways.enabled(&buf) {
		t.Error("ColorAlways should be enabled")
	}
	if ColorNever.enabled(os.Stdout) {
		t.Error("ColorNever should be disabled")
	}
	if ColorAuto.enabled(&buf) {
		t.Error("ColorAuto should be disabled for a buffer")
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()
	if ColorAuto.enabled(w) {
		t.Error("ColorAuto should be disabled for a pipe")
	}
}

func TestColorMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if ColorAuto.enabled(os.Stdout) {
		t.Error("ColorAuto should honor NO_COLOR")
	}
	if !ColorAlways.enabled(os.Stdout) {
		t.Error("ColorAlways should ignore NO_COLOR")
	}
}
