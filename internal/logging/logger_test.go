package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	logger := New(buffer, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("visible", "error", errors.New("boom"))

	out := buffer.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug record must be filtered out: %q", out)
	}

	if !strings.Contains(out, "err=boom") {
		t.Errorf("Error key must be renamed to err: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tt := []struct {
		input string
		level slog.Level
		fail  bool
	}{
		{input: "debug", level: slog.LevelDebug},
		{input: "INFO", level: slog.LevelInfo},
		{input: " warn ", level: slog.LevelWarn},
		{input: "error", level: slog.LevelError},
		{input: "verbose", fail: true},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLevel(tc.input)
			if tc.fail {
				if err == nil {
					t.Fatal("Error expected")
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if level != tc.level {
				t.Errorf("Level does not match: want %v, got %v", tc.level, level)
			}
		})
	}
}
