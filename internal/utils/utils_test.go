package utils

import (
	"log/slog"
	"testing"
)

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("HOMELAND_TEST_KEY", "")
	if got := GetEnvDefault("HOMELAND_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("empty variable: got %q", got)
	}
	t.Setenv("HOMELAND_TEST_KEY", "value")
	if got := GetEnvDefault("HOMELAND_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("set variable: got %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" INFO ": slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"error":  slog.LevelError,
		"loud":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Errorf("Clamp out of bounds")
	}
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Errorf("Lerp(0, 10, 0.25) = %v", Lerp(0, 10, 0.25))
	}
}
