// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Options controls logger construction.
type Options struct {
	// Level is a zerolog level name; unknown values fall back to info.
	Level string

	// Out defaults to os.Stderr.
	Out io.Writer

	// Console forces human-readable output. When nil, console output is
	// used only if Out is a terminal.
	Console *bool
}

// New returns a timestamped logger writing to opts.Out.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	console := isTerminal(out)
	if opts.Console != nil {
		console = *opts.Console
	}
	if console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
