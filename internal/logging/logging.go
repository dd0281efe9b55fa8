// Package logging builds the structured logger. The terminal belongs to the
// TUI, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the given level name.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "devhub",
		ReportTimestamp: true,
	}), nil
}

// Open appends to the file at path and returns a logger plus the file
// closer. An empty path discards output.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		l, err := New(io.Discard, level)
		return l, io.NopCloser(nil), err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
