// Package logging provides concrete implementations of the coldstart.Logger
// interface.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to stderr
//   - NullLogger: discards all messages (useful for testing)
//
// Diagnostics go to stderr so that the one-line operation summaries printed
// to stdout stay machine-parseable.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	mu      sync.Mutex
	w       io.Writer
}

// NewConsoleLogger creates a ConsoleLogger writing to stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{verbose: verbose, w: os.Stderr}
}

// newConsoleLoggerTo is like NewConsoleLogger with an explicit destination.
// Used by tests to capture output.
func newConsoleLoggerTo(verbose bool, w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{verbose: verbose, w: w}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] "+format, args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] "+format, args...)
}

func (l *ConsoleLogger) write(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.w, format+"\n", args...)
	} else {
		fmt.Fprint(l.w, format+"\n")
	}
}
