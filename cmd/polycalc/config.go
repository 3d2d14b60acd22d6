package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Defaults mirror the classic driver: evaluate p at 2, shortest coefficients.
const (
	DefaultEvalAt    = 2.0
	DefaultPrecision = -1
	DefaultLogLevel  = "info"
)

var (
	errUnknownKey = errors.New("polycalc: unknown config key")
	errBadConfig  = errors.New("polycalc: invalid config")
)

// Config drives one polycalc run. Field tags are the TOML keys.
type Config struct {
	// Input is the file to read polynomials from; "" or "-" means stdin.
	Input string `toml:"input"`
	// EvalAt is the point p is evaluated at.
	EvalAt float64 `toml:"eval_at"`
	// Precision is the number of significant digits for coefficients and the
	// evaluation result; -1 prints the shortest exact form.
	Precision int `toml:"precision"`
	// LogLevel is any level zerolog.ParseLevel accepts.
	LogLevel string `toml:"log_level"`
	// Quiet suppresses the input prompts.
	Quiet bool `toml:"quiet"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		EvalAt:    DefaultEvalAt,
		Precision: DefaultPrecision,
		LogLevel:  DefaultLogLevel,
	}
}

// parseConfig resolves defaults < config file < explicitly set flags.
// Usage and flag errors are written to stderr.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	def := DefaultConfig()
	fs := flag.NewFlagSet("polycalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		path  = fs.String("config", "", "TOML config file")
		in    = fs.String("in", def.Input, "input file (default stdin)")
		x     = fs.Float64("x", def.EvalAt, "point to evaluate p at")
		prec  = fs.Int("prec", def.Precision, "significant digits for coefficients (-1 = shortest)")
		level = fs.String("log-level", def.LogLevel, "log level (trace, debug, info, warn, error, disabled)")
		quiet = fs.Bool("quiet", def.Quiet, "do not print input prompts")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %q", errBadConfig, fs.Args())
	}

	cfg := def
	if *path != "" {
		if err := loadConfigFile(*path, &cfg); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *in
		case "x":
			cfg.EvalAt = *x
		case "prec":
			cfg.Precision = *prec
		case "log-level":
			cfg.LogLevel = *level
		case "quiet":
			cfg.Quiet = *quiet
		}
	})

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadConfigFile decodes path over cfg. Keys cfg does not know are rejected.
func loadConfigFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("polycalc: config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return fmt.Errorf("%w in %s: %s", errUnknownKey, path, strings.Join(keys, ", "))
	}

	return nil
}

func (c Config) validate() error {
	if math.IsNaN(c.EvalAt) || math.IsInf(c.EvalAt, 0) {
		return fmt.Errorf("%w: eval_at must be finite, got %v", errBadConfig, c.EvalAt)
	}
	if c.Precision < -1 {
		return fmt.Errorf("%w: precision must be >= -1, got %d", errBadConfig, c.Precision)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", errBadConfig, err)
	}

	return nil
}
