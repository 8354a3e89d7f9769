// Package logging provides the leveled console logger with an optional
// append-only file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/dlcleanup/internal/config"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// Lines written to the file carry a short run ID so that appended runs can
// be told apart.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	color   bool
	verbose bool
	runID   string
	file    *os.File
}

// NewLogger initializes colors from cfg and optionally opens cfg.LogFile.
// Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	l := &Logger{
		out:     os.Stdout,
		errOut:  os.Stderr,
		color:   configureColors(cfg.ColorMode),
		verbose: cfg.Verbose,
		runID:   uuid.NewString()[:8],
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// RunID returns the identifier stamped on log-file lines.
func (l *Logger) RunID() string { return l.runID }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	if l.color && color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, ts+" ["+level+"] "+text+"\n")
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" "+l.runID+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when the logger was built with
// Verbose set.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", Cyan, fmt.Sprintf(format, args...))
}
