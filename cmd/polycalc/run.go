package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sparsepoly/polynomial"
	"github.com/rs/zerolog"
)

// run reads p and q from in and prints p, q, p+q, p·q and p(EvalAt) to out.
func run(cfg Config, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	r := bufio.NewReader(in)

	p, err := readPolynomial(r, out, "p", cfg, logger)
	if err != nil {
		return err
	}
	q, err := readPolynomial(r, out, "q", cfg, logger)
	if err != nil {
		return err
	}

	prec := cfg.Precision
	x := strconv.FormatFloat(cfg.EvalAt, 'g', -1, 64)
	if _, err := fmt.Fprintf(out,
		"p(x) = %s\nq(x) = %s\np(x) + q(x) = %s\np(x) * q(x) = %s\np(%s) = %s\n",
		render(p, prec),
		render(q, prec),
		render(p.Add(q), prec),
		render(p.Mult(q), prec),
		x, strconv.FormatFloat(p.Eval(cfg.EvalAt), 'g', prec, 64),
	); err != nil {
		return fmt.Errorf("polycalc: write results: %w", err)
	}
	logger.Debug().Float64("x", cfg.EvalAt).Msg("results written")

	return nil
}

// render formats p with prec significant digits per coefficient, or in the
// shortest exact form when prec is negative.
func render(p *polynomial.Polynomial, prec int) string {
	if prec < 0 {
		return p.String()
	}

	return fmt.Sprintf("%.*v", prec, p)
}

func readPolynomial(r io.Reader, out io.Writer, name string, cfg Config, logger zerolog.Logger) (*polynomial.Polynomial, error) {
	if !cfg.Quiet {
		if _, err := fmt.Fprintf(out, "Enter polynomial %s as a term count followed by (exp coef) pairs:\n", name); err != nil {
			return nil, fmt.Errorf("polycalc: write prompt: %w", err)
		}
	}
	p, err := polynomial.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("polycalc: read %s: %w", name, err)
	}
	logger.Debug().
		Str("name", name).
		Int("terms", p.Len()).
		Int("degree", p.Degree()).
		Stringer("value", p).
		Msg("parsed polynomial")

	return p, nil
}
