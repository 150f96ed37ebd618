package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"number", "30", 30},
		{"garbage", "fast", 60},
		{"empty", "", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FLOATY_TEST_FPS", tt.value)
			if got := envInt("FLOATY_TEST_FPS", 60); got != tt.want {
				t.Errorf("envInt() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestEnvString(t *testing.T) {
	if got := envString("FLOATY_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("unset variable should use fallback, got %q", got)
	}

	t.Setenv("FLOATY_TEST_DB", "/tmp/x.db")
	if got := envString("FLOATY_TEST_DB", "fallback"); got != "/tmp/x.db" {
		t.Errorf("envString() = %q, expected /tmp/x.db", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	old := flagLogLevel
	defer func() { flagLogLevel = old }()

	var buf bytes.Buffer
	flagLogLevel = "warn"
	logger := newLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("warn level should only print warnings, got %q", out)
	}
	if !strings.Contains(out, "floaty") {
		t.Errorf("log lines should carry the floaty prefix, got %q", out)
	}
}
