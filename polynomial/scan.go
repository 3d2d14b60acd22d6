// File: scan.go
// Role: Textual input "n  e1 c1  e2 c2 ... en cn" through fmt.Scanner.
// Policy:
//   - The target is replaced only after every token has been read.
//   - Duplicate exponents are summed, not overwritten.

package polynomial

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxScanPrealloc bounds the capacity reserved from an untrusted term count.
const maxScanPrealloc = 1 << 10

// Scan implements fmt.Scanner so that fmt.Fscan(r, p) reads a polynomial:
// an integer term count n followed by n (exponent, coefficient) pairs, all
// separated by whitespace. Newlines count as whitespace.
//
// Coefficients must be finite: NaN and ±Inf are rejected with ErrNonFinite.
// On failure p is left unchanged and the error is an *InputFormatError.
// Tokens after the last pair stay in the reader when it implements
// io.RuneScanner (wrap plain readers in a bufio.Reader).
func (p *Polynomial) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 's', 'd':
	default:
		return &InputFormatError{Field: FieldCount, Err: ErrBadVerb}
	}

	tok, err := nextToken(state)
	if err != nil {
		return &InputFormatError{Token: 0, Field: FieldCount, Err: err}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return &InputFormatError{Token: 0, Field: FieldCount, Err: err}
	}
	if n < 0 {
		return &InputFormatError{Token: 0, Field: FieldCount, Err: ErrNegativeCount}
	}

	tmp := New(min(n, maxScanPrealloc) + 4)
	for i := 0; i < n; i++ {
		expTok, err := nextToken(state)
		if err != nil {
			return &InputFormatError{Token: 2*i + 1, Field: FieldExponent, Err: err}
		}
		exp, err := strconv.Atoi(expTok)
		if err != nil {
			return &InputFormatError{Token: 2*i + 1, Field: FieldExponent, Err: err}
		}
		coefTok, err := nextToken(state)
		if err != nil {
			return &InputFormatError{Token: 2*i + 2, Field: FieldCoefficient, Err: err}
		}
		coef, err := strconv.ParseFloat(coefTok, 64)
		if err != nil {
			return &InputFormatError{Token: 2*i + 2, Field: FieldCoefficient, Err: err}
		}
		if math.IsNaN(coef) || math.IsInf(coef, 0) {
			return &InputFormatError{Token: 2*i + 2, Field: FieldCoefficient, Err: ErrNonFinite}
		}
		tmp.addInPlace(exp, coef)
	}
	tmp.normalize()
	p.terms = tmp.terms

	return nil
}

// nextToken reads the next whitespace-delimited token. The bytes returned by
// ScanState.Token are only valid until the next call, so they are copied.
func nextToken(state fmt.ScanState) (string, error) {
	tok, err := state.Token(true, nil)
	if err != nil {
		return "", err
	}
	if len(tok) == 0 {
		return "", io.ErrUnexpectedEOF
	}

	return string(tok), nil
}

// Parse reads one polynomial from r. See Scan for the format.
func Parse(r io.Reader) (*Polynomial, error) {
	p := New(0)
	if _, err := fmt.Fscan(r, p); err != nil {
		return nil, err
	}

	return p, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Polynomial, error) {
	return Parse(strings.NewReader(s))
}
