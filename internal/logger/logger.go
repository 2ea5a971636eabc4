// Package logger provides logging for the ghtrend CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to help users follow the pagination of the feed.
// Errors are always printed: they are the only record of a failed fetch.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
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
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// ToFile redirects logs to the file at path, appending to it.
// The TUI uses this so log lines do not draw over the alternate screen.
// The returned closer restores os.Stderr and closes the file.
func ToFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	SetOutput(&stamped{w: f})
	return closerFunc(func() error {
		SetOutput(os.Stderr)
		return f.Close()
	}), nil
}

// Debug logs pagination and request detail. Verbose only.
func Debug(format string, args ...any) { logf(true, "[DEBUG] ", format, args...) }

// Info logs progress. Verbose only.
func Info(format string, args ...any) { logf(true, "[INFO] ", format, args...) }

// Warn logs recoverable problems. Verbose only.
func Warn(format string, args ...any) { logf(true, "[WARN] ", format, args...) }

// Error logs failures. It is never suppressed.
func Error(format string, args ...any) { logf(false, "[ERROR] ", format, args...) }

// Section prints a "=== name ===" divider. Verbose only.
func Section(name string) { logf(true, "\n=== ", "%s ===", name) }

// logf writes one line. Lines marked verboseOnly are dropped unless
// verbose mode is on.
func logf(verboseOnly bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verboseOnly && !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// stamped prefixes every write with a timestamp. Log files outlive a
// session, so lines need to be placed in time.
type stamped struct {
	w io.Writer
}

func (s *stamped) Write(p []byte) (int, error) {
	if _, err := io.WriteString(s.w, time.Now().Format(time.RFC3339)+" "); err != nil {
		return 0, err
	}
	return s.w.Write(p)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
