// Command polycalc reads two sparse polynomials and prints their sum,
// product and the value of the first one at a point.
//
// Input is two polynomials in the "n  e1 c1 ... en cn" format, read from
// stdin or -in. For example
//
//	$ printf '3 4 3 2 2 0 1\n2 2 1 0 5\n' | polycalc -quiet
//	p(x) = 3*x^4 + 2*x^2 + 1
//	q(x) = x^2 + 5
//	p(x) + q(x) = 3*x^4 + 3*x^2 + 6
//	p(x) * q(x) = 3*x^6 + 17*x^4 + 11*x^2 + 5
//	p(2) = 57
//
// Settings come from flags and an optional TOML file (-config); see Config.
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/katalvlaran/sparsepoly/polynomial"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger, _ := newLogger(stderr, DefaultLogLevel)
		logger.Error().Err(err).Msg("bad configuration")

		return 2
	}

	// validate has already accepted the level.
	logger, _ := newLogger(stderr, cfg.LogLevel)
	logger.Debug().
		Str("input", cfg.Input).
		Float64("eval_at", cfg.EvalAt).
		Int("precision", cfg.Precision).
		Msg("configuration resolved")

	in := stdin
	if cfg.Input != "" && cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			logger.Error().Err(err).Msg("open input")

			return 1
		}
		defer f.Close()
		in = f
	}

	if err := run(cfg, in, stdout, logger); err != nil {
		logEvent(logger, err).Msg("polycalc failed")

		return 1
	}

	return 0
}

// logEvent starts an error event, attaching parse position when known.
func logEvent(logger zerolog.Logger, err error) *zerolog.Event {
	ev := logger.Error().Err(err)
	var ife *polynomial.InputFormatError
	if errors.As(err, &ife) {
		ev = ev.Int("token", ife.Token).Str("field", string(ife.Field))
	}

	return ev
}
