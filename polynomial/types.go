// SPDX-License-Identifier: MIT

// Package polynomial: domain types. Errors live in errors.go; algorithms in
// their own files.
package polynomial

import "strings"

// Term is one monomial Coef·x^Exp.
//
// Terms are plain values: a Polynomial hands out copies, so editing a Term
// obtained from Terms never changes the polynomial it came from.
type Term struct {
	Exp  int     // exponent; negative values are stored but never produced by normal use
	Coef float64 // coefficient; exactly 0.0 is never stored
}

// String renders the term alone using the same rules as Polynomial.String,
// e.g. Term{Exp: 3, Coef: -4} renders as "-4*x^3".
func (t Term) String() string {
	var b strings.Builder
	writeTerm(&b, t, true, -1)

	return b.String()
}

// Polynomial is a sparse univariate polynomial.
//
// The zero value is the zero polynomial and is ready to use. Always pass
// *Polynomial around: copying the struct would share the backing slice, use
// Clone for an independent copy.
type Polynomial struct {
	// terms is kept normalized between public calls: exponents strictly
	// descending, no exact-zero coefficients. Empty means zero polynomial.
	terms []Term
}
