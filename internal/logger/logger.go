// Package logger provides leveled logging for the aurora CLI.
//
// Debug, Info, Warn and Section output is printed only in verbose mode
// (--verbose). Errors are always printed. Every line goes to a single
// writer, stderr by default, so report output written to stdout stays clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the severity of a log line.
type Level string

// Log levels in increasing severity.
const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. A nil writer discards everything.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	output = w
}

// Enabled reports whether lines of the given level are printed.
func Enabled(level Level) bool {
	if level == LevelError {
		return true
	}
	return IsVerbose()
}

// emit takes the write lock so concurrent lines never interleave.
func emit(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level != LevelError && !verbose {
		return
	}
	fmt.Fprintf(output, "["+string(level)+"] "+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	emit(LevelDebug, format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	emit(LevelInfo, format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	emit(LevelWarn, format, args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	emit(LevelError, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
