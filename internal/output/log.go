// Package output holds the terminal side of the CLI: a shared charmbracelet
// logger on stderr for diagnostics, and the lipgloss styles of the generator
// summary printed on stdout.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/yuilib/yuigen/internal/branding"
)

// Logger is the shared diagnostics logger. Generation steps log at debug
// level, so they only show with --verbose.
var Logger = newLogger(os.Stderr, false)

// SetupLogging points the logger at w. verbose switches to debug level and
// adds timestamps and the calling line.
func SetupLogging(w io.Writer, verbose bool) {
	Logger = newLogger(w, verbose)
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	opts := log.Options{
		Prefix: branding.CLIName(),
		Level:  log.InfoLevel,
	}
	if verbose {
		opts.Level = log.DebugLevel
		opts.ReportTimestamp = true
		opts.ReportCaller = true
		opts.CallerOffset = 1
	}
	return log.NewWithOptions(w, opts)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
