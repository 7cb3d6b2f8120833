// Package logging builds the structured logger shared by the CLI and pipeline.
package logging

import (
	"io"

	"github.com/phuslu/log"
)

// New returns a logger writing human-readable lines to w at the given level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func New(level string, w io.Writer, color bool) *log.Logger {
	return &log.Logger{
		Level: parseLevel(level),
		Writer: &log.ConsoleWriter{
			Writer:      w,
			ColorOutput: color,
			QuoteString: true,
		},
	}
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return &log.Logger{Level: log.PanicLevel, Writer: &log.IOWriter{Writer: io.Discard}}
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug", "info", "warn", "error":
		return log.ParseLevel(s)
	}
	return log.InfoLevel
}
