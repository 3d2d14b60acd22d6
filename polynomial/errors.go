// SPDX-License-Identifier: MIT
// Package polynomial: sentinel error set.
// Every message is prefixed with "polynomial: ". Callers match with errors.Is;
// only parsing can fail, arithmetic and rendering are total.

package polynomial

import (
	"errors"
	"strconv"
)

var (
	// ErrInputFormat is matched by every parse failure (see InputFormatError).
	ErrInputFormat = errors.New("polynomial: malformed input")

	// ErrNegativeCount indicates a negative term count at the head of the input.
	ErrNegativeCount = errors.New("polynomial: term count must be non-negative")

	// ErrNonFinite indicates a NaN or ±Inf coefficient in parsed input.
	ErrNonFinite = errors.New("polynomial: coefficient must be finite")

	// ErrBadVerb is returned by Scan for a verb other than %v, %s or %d.
	ErrBadVerb = errors.New("polynomial: unsupported scan verb")
)

// Field names the token a parser expected when it failed.
type Field string

const (
	// FieldCount is the leading term count n.
	FieldCount Field = "term count"
	// FieldExponent is the integer exponent of a pair.
	FieldExponent Field = "exponent"
	// FieldCoefficient is the float coefficient of a pair.
	FieldCoefficient Field = "coefficient"
)

// InputFormatError reports a parse failure. It matches ErrInputFormat under
// errors.Is and unwraps to the underlying cause: io.ErrUnexpectedEOF for a
// short stream, a *strconv.NumError for a malformed token, ErrNonFinite,
// ErrNegativeCount or ErrBadVerb.
type InputFormatError struct {
	// Token is the zero-based index of the offending token; the count is
	// token 0, the exponent of pair i is token 2i+1 and its coefficient 2i+2.
	Token int
	// Field is what the parser expected at Token.
	Field Field
	// Err is the cause.
	Err error
}

func (err *InputFormatError) Error() string {
	return "polynomial: token " + strconv.Itoa(err.Token) + ": reading " + string(err.Field) + ": " + err.Err.Error()
}

func (err *InputFormatError) Unwrap() error {
	return err.Err
}

// Is reports whether target is ErrInputFormat.
func (err *InputFormatError) Is(target error) bool {
	return target == ErrInputFormat
}
