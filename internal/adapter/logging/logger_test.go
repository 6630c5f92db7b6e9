package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "info")

	logger.Log(LevelWarn, "read dir /x", errors.New("permission denied"))
	logger.Log(LevelInfo, "done", nil)

	want := "[WARN] read dir /x: permission denied\n[INFO] done\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "WARN")

	logger.Log(LevelDebug, "hidden", nil)
	logger.Log(LevelInfo, "hidden", nil)
	logger.Log(LevelError, "shown", nil)

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("expected debug/info to be filtered, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[ERROR] shown") {
		t.Errorf("expected error line, got %q", buf.String())
	}
}

func TestConsoleLogger_NoColorForBuffers(t *testing.T) {
	logger := NewConsoleLogger(&bytes.Buffer{}, "info")
	if logger.color {
		t.Error("expected color disabled for non-terminal writer")
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := map[string]string{
		"":        LevelInfo,
		"DEBUG":   LevelDebug,
		" warn ":  LevelWarn,
		"error":   LevelError,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := NormalizeLevel(in); got != want {
			t.Errorf("NormalizeLevel(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		message string
		err     error
	}{
		{"without error", LevelInfo, "search finished", nil},
		{"with error", LevelWarn, "get metadata for /x", errors.New("no such file or directory")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewJSONLogger(&buf, "debug").Log(tt.level, tt.message, tt.err)

			var entry LogEntry
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
				t.Fatalf("failed to parse JSON: %v", err)
			}
			if entry.Level != tt.level {
				t.Errorf("expected level %q, got %q", tt.level, entry.Level)
			}
			if entry.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, entry.Message)
			}
			if tt.err != nil && entry.Error != tt.err.Error() {
				t.Errorf("expected error %q, got %q", tt.err.Error(), entry.Error)
			}
			if tt.err == nil && entry.Error != "" {
				t.Errorf("expected empty error, got %q", entry.Error)
			}

			ts, err := time.Parse(time.RFC3339, entry.Timestamp)
			if err != nil {
				t.Errorf("failed to parse timestamp: %v", err)
			}
			if time.Since(ts) > time.Minute {
				t.Errorf("timestamp too old: %s", entry.Timestamp)
			}
		})
	}
}

func TestNew(t *testing.T) {
	if _, err := New("text", nil, "info"); err != nil {
		t.Errorf("unexpected error for text: %v", err)
	}
	if l, err := New("json", nil, "info"); err != nil {
		t.Errorf("unexpected error for json: %v", err)
	} else if _, ok := l.(*JSONLogger); !ok {
		t.Errorf("expected *JSONLogger, got %T", l)
	}
	if _, err := New("xml", nil, "info"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
