package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a human-readable zerolog logger writing to w. An empty
// level means DefaultLogLevel.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	if level == "" {
		level = DefaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Str("cmd", "polycalc").
		Logger(), nil
}
