package polynomial_test

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/sparsepoly/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Scenario: "3  4 3  2 2  0 1" renders as 3*x^4 + 2*x^2 + 1.
func TestParse_Scenario(t *testing.T) {
	p, err := polynomial.ParseString("3  4 3  2 2  0 1")
	require.NoError(t, err)
	assert.Equal(t, "3*x^4 + 2*x^2 + 1", p.String())
}

// TestParse_UnsortedAndDuplicates sums duplicate exponents instead of
// overwriting, and sorts the result.
func TestParse_UnsortedAndDuplicates(t *testing.T) {
	p, err := polynomial.ParseString("4\n0 1\n2 3\n0 2\n2 -3\n")
	require.NoError(t, err)
	assert.Equal(t, []polynomial.Term{{Exp: 0, Coef: 3}}, p.Terms())
}

// TestParse_Zero accepts an empty term list.
func TestParse_Zero(t *testing.T) {
	p, err := polynomial.ParseString("  0  ")
	require.NoError(t, err)
	assert.True(t, p.IsZero())
}

// TestParse_Errors checks the token index, field and cause of each failure.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		token int
		field polynomial.Field
		cause error
	}{
		{"empty", "", 0, polynomial.FieldCount, io.ErrUnexpectedEOF},
		{"blank", " \n\t", 0, polynomial.FieldCount, io.ErrUnexpectedEOF},
		{"bad-count", "three", 0, polynomial.FieldCount, strconv.ErrSyntax},
		{"negative-count", "-1", 0, polynomial.FieldCount, polynomial.ErrNegativeCount},
		{"missing-exponent", "2  1 1", 3, polynomial.FieldExponent, io.ErrUnexpectedEOF},
		{"missing-coefficient", "2  1 1  0", 4, polynomial.FieldCoefficient, io.ErrUnexpectedEOF},
		{"bad-exponent", "1  x 1", 1, polynomial.FieldExponent, strconv.ErrSyntax},
		{"fractional-exponent", "1  1.5 1", 1, polynomial.FieldExponent, strconv.ErrSyntax},
		{"bad-coefficient", "1  2 one", 2, polynomial.FieldCoefficient, strconv.ErrSyntax},
		{"nan-coefficient", "1  2 NaN", 2, polynomial.FieldCoefficient, polynomial.ErrNonFinite},
		{"inf-coefficient", "1  2 inf", 2, polynomial.FieldCoefficient, polynomial.ErrNonFinite},
		{"negative-inf-coefficient", "2  1 1  0 -Inf", 4, polynomial.FieldCoefficient, polynomial.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := polynomial.ParseString(tc.src)
			assert.Nil(t, p)
			require.Error(t, err)
			assert.ErrorIs(t, err, polynomial.ErrInputFormat)
			assert.ErrorIs(t, err, tc.cause)

			var ife *polynomial.InputFormatError
			require.True(t, errors.As(err, &ife))
			assert.Equal(t, tc.token, ife.Token)
			assert.Equal(t, tc.field, ife.Field)
			assert.Contains(t, ife.Error(), string(tc.field))
		})
	}
}

// TestScan_UnchangedOnFailure keeps the previous value when input is short.
func TestScan_UnchangedOnFailure(t *testing.T) {
	p := mustParse(t, "2  1 1  0 1")

	_, err := fmt.Fscan(strings.NewReader("3  2 1  1 1"), p)
	require.Error(t, err)
	assert.Equal(t, "x + 1", p.String())
}

// TestScan_ReplacesTarget overwrites, it does not add to, the old value.
func TestScan_ReplacesTarget(t *testing.T) {
	p := mustParse(t, "2  1 1  0 1")

	_, err := fmt.Fscan(strings.NewReader("1  3 2"), p)
	require.NoError(t, err)
	assert.Equal(t, "2*x^3", p.String())
}

// TestScan_Sequential reads two polynomials from one stream and leaves the
// trailing token for the caller.
func TestScan_Sequential(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("3 4 3 2 2 0 1\n2 2 1 0 5\nrest"))
	var p, q polynomial.Polynomial

	n, err := fmt.Fscan(r, &p, &q)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "3*x^4 + 2*x^2 + 1", p.String())
	assert.Equal(t, "x^2 + 5", q.String())

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "\nrest", string(rest))
}

// TestScan_BadVerb rejects verbs other than %v, %s and %d.
func TestScan_BadVerb(t *testing.T) {
	var p polynomial.Polynomial
	_, err := fmt.Fscanf(strings.NewReader("1 0 1"), "%x", &p)
	assert.ErrorIs(t, err, polynomial.ErrBadVerb)
	assert.ErrorIs(t, err, polynomial.ErrInputFormat)
}
