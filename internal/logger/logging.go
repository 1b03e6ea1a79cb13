// Package logger provides prefixed variants of charmbracelet/log's default logger for the cmd and packages.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewStderr creates a charm log on stderr. Anything that shares a process
// with the IPC server must use this, stdout belongs to the protocol.
func NewStderr(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false, false, log.TextFormatter)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
