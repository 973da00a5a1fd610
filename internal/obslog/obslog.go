// Package obslog sets up the process-wide logger, grounded on
// original_source/project/logger_setup.py's colorized, leveled logging
// (a custom formatter, a bespoke VERBOSE level below DEBUG, per-module
// level overrides) reimplemented on github.com/rs/zerolog, the leveled
// structured logger most represented across the retrieval pack.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Setup configures the global zerolog logger. verbosity mirrors the
// source's -v/--verbose flag: 0 is Info, 1 enables Debug, 2+ enables
// zerolog's TraceLevel (the Go analogue of the source's custom VERBOSE
// level, which also sits one rung below Debug).
func Setup(out io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbosity >= 2:
		level = zerolog.TraceLevel
	case verbosity == 1:
		level = zerolog.DebugLevel
	}

	writer := out
	if f, ok := out.(*os.File); ok && isTerminal(f) {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)
	return logger
}

// isTerminal reports whether f looks like an interactive terminal,
// matching the source's ColorFormatter only being worth its cost for a
// human-watched stream.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
