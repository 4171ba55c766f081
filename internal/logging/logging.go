// Package logging builds the diagnostic logger used across ptprov.
//
// Diagnostic logs go to stderr and are quiet by default; --verbose lowers
// the level to debug. Messages meant for the operator are printed by the
// commands themselves and never go through this logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Verbose enables debug output;
// otherwise only warnings and errors are emitted.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("app", "ptprov").
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
