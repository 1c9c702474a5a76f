package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a configured level name (case insensitive) to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Entry represents a log entry
type Entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// state is shared between a logger and the loggers derived from it, so a
// level change on the root also applies to WithField children.
type state struct {
	mu       sync.Mutex
	output   io.Writer
	level    Level
	json     bool
	disabled bool
	now      func() time.Time
}

// Logger provides structured logging capabilities
type Logger struct {
	*state
	fields map[string]any
}

// New creates a logger writing human readable INFO and above to stderr.
// Stdout is left to command output (generated HTML, JSON).
func New() *Logger {
	return &Logger{
		state: &state{
			output: os.Stderr,
			level:  LevelInfo,
			now:    time.Now,
		},
		fields: make(map[string]any),
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	l := New()
	l.output = io.Discard
	l.disabled = true
	return l
}

// SetOutput sets the output destination
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the minimum log level
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetJSON enables or disables JSON output
func (l *Logger) SetJSON(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.json = enabled
}

// Disable disables all logging
func (l *Logger) Disable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = true
}

// Enable enables logging
func (l *Logger) Enable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = false
}

// WithField returns a new logger with an additional field
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a new logger with additional fields
func (l *Logger) WithFields(fields map[string]any) *Logger {
	newFields := make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(newFields, l.fields)
	maps.Copy(newFields, fields)

	return &Logger{state: l.state, fields: newFields}
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled || level < l.level {
		return
	}

	message := fmt.Sprintf(format, args...)
	timestamp := l.now().Format(time.RFC3339)

	if l.json {
		entry := Entry{
			Timestamp: timestamp,
			Level:     level.String(),
			Message:   message,
			Fields:    l.fields,
		}
		data, err := json.Marshal(entry)
		if err != nil {
			_, _ = fmt.Fprintf(l.output, `{"error":"failed to marshal log entry: %s"}`+"\n", err)
			return
		}
		_, _ = fmt.Fprintln(l.output, string(data))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", timestamp, level, message)
	// Sorted so that repeated runs produce comparable lines.
	for _, k := range slices.Sorted(maps.Keys(l.fields)) {
		fmt.Fprintf(&b, " %s=%v", k, l.fields[k])
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(l.output, b.String())
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Default logger instance
var defaultLogger = New()

// Default returns the process wide logger
func Default() *Logger {
	return defaultLogger
}

// Configure applies a level name and output format to the default logger
func Configure(level string, jsonOutput bool) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	defaultLogger.SetLevel(lvl)
	defaultLogger.SetJSON(jsonOutput)
	return nil
}

// Debug logs a debug message using the default logger
func Debug(format string, args ...any) {
	defaultLogger.Debug(format, args...)
}

// Info logs an info message using the default logger
func Info(format string, args ...any) {
	defaultLogger.Info(format, args...)
}

// Warn logs a warning message using the default logger
func Warn(format string, args ...any) {
	defaultLogger.Warn(format, args...)
}

// Error logs an error message using the default logger
func Error(format string, args ...any) {
	defaultLogger.Error(format, args...)
}

// WithField returns a new logger with an additional field using the default logger
func WithField(key string, value any) *Logger {
	return defaultLogger.WithField(key, value)
}
