// Package logging provides the leveled loggers used for diagnostics.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger writes one record per call.
type Logger interface {
	Log(level, message string, err error)
}

func levelToInt(level string) int {
	switch level {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return 1
	}
}

// NormalizeLevel lowercases level and falls back to info for unknown values.
func NormalizeLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return normalized
	}
	return LevelInfo
}

// ConsoleLogger writes plain text lines, coloring the level on terminals.
type ConsoleLogger struct {
	writer   io.Writer
	minLevel string
	color    bool
	mu       sync.Mutex
}

func NewConsoleLogger(writer io.Writer, level string) *ConsoleLogger {
	if writer == nil {
		writer = os.Stderr
	}
	return &ConsoleLogger{
		writer:   writer,
		minLevel: NormalizeLevel(level),
		color:    IsTerminal(writer) && !color.NoColor,
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *ConsoleLogger) Log(level, message string, err error) {
	level = NormalizeLevel(level)
	if levelToInt(level) < levelToInt(l.minLevel) {
		return
	}

	line := message
	if err != nil {
		line = fmt.Sprintf("%s: %v", message, err)
	}

	tag := strings.ToUpper(level)
	if l.color {
		tag = levelColor(level).Sprint(tag)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "[%s] %s\n", tag, line)
}

func levelColor(level string) *color.Color {
	switch level {
	case LevelDebug:
		return color.New(color.FgHiBlack)
	case LevelWarn:
		return color.New(color.FgYellow)
	case LevelError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}

// LogEntry is the record written by JSONLogger.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

// JSONLogger writes one JSON object per line.
type JSONLogger struct {
	writer   io.Writer
	minLevel string
	mu       sync.Mutex
}

func NewJSONLogger(writer io.Writer, level string) *JSONLogger {
	if writer == nil {
		writer = os.Stderr
	}
	return &JSONLogger{writer: writer, minLevel: NormalizeLevel(level)}
}

func (l *JSONLogger) Log(level, message string, err error) {
	level = NormalizeLevel(level)
	if levelToInt(level) < levelToInt(l.minLevel) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   message,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode log entry: %v\n", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.writer, string(data))
}

// New returns the logger for format ("text" or "json").
func New(format string, writer io.Writer, level string) (Logger, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewConsoleLogger(writer, level), nil
	case "json":
		return NewJSONLogger(writer, level), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}
