package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level defines logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a config string into a Level. Unknown values default to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled printf-style logger writing to a file or stdout.
type Logger struct {
	mu    sync.Mutex
	out   *os.File
	level Level
	owned bool
}

// New creates a logger writing to the given file path. An empty path or
// "stdout" keeps output on standard out. Parent directories are created.
func New(path, level string) (*Logger, error) {
	l := &Logger{level: ParseLevel(level)}

	if path == "" || path == "stdout" {
		l.out = os.Stdout
		return l, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log directory: %v", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open log file: %v", err)
	}

	l.out = f
	l.owned = true
	return l, nil
}

// Close releases the underlying file if the logger owns one.
func (l *Logger) Close() error {
	if !l.owned {
		return nil
	}
	return l.out.Close()
}

func (l *Logger) Debug(format string, v ...interface{}) { l.logf(LevelDebug, "DEBUG", format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.logf(LevelInfo, "INFO", format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.logf(LevelWarn, "WARN", format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.logf(LevelError, "ERROR", format, v...) }

// Fatal logs the message at error level and terminates the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "FATAL", format, v...)
	os.Exit(1)
}

func (l *Logger) logf(level Level, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	line := fmt.Sprintf("%s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"), tag, fmt.Sprintf(format, v...))

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.WriteString(line)
}
