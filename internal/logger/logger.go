// Package logger builds the zerolog loggers used by the verse CLI. Library
// packages accept a zerolog.Logger in their configs; the zero value is
// silent.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// New creates a logger from opts. Logs go to stderr unless a writer is set,
// so they never mix with generated output on stdout.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// Level picks the log level for the CLI's --verbose and --quiet flags.
func Level(verbose, quiet bool) string {
	switch {
	case quiet:
		return zerolog.LevelErrorValue
	case verbose:
		return zerolog.LevelDebugValue
	default:
		return zerolog.LevelInfoValue
	}
}
