// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Algebraic rendering ("3*x^4 - x + 1") via fmt.Stringer and fmt.Formatter.

package polynomial

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// String renders p in stored (descending exponent) order:
//
//   - the zero polynomial is "0";
//   - terms are joined by " + " or " - " after the sign of the next term,
//     and a negative first term gets a bare "-" prefix;
//   - the coefficient magnitude is omitted only when it is exactly 1 and
//     the exponent is non-zero, and "*" appears only after a printed one;
//   - exponent 0 prints no x, exponent 1 prints "x", anything else "x^e".
//
// Coefficients use the shortest representation that round-trips.
func (p *Polynomial) String() string {
	return p.render(-1)
}

// Format implements fmt.Formatter.
//
//	%v, %s  same as String
//	%.Nv    coefficients limited to N significant digits
//	%q      quoted String
func (p *Polynomial) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	if !ok {
		prec = -1
	}
	switch verb {
	case 'v', 's':
		io.WriteString(f, p.render(prec))
	case 'q':
		io.WriteString(f, strconv.Quote(p.render(prec)))
	default:
		fmt.Fprintf(f, "%%!%c(polynomial=%s)", verb, p.render(-1))
	}
}

func (p *Polynomial) render(prec int) string {
	terms := p.view()
	if len(terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range terms {
		writeTerm(&b, t, i == 0, prec)
	}

	return b.String()
}

// writeTerm writes t with its joiner. prec is passed to strconv.FormatFloat
// with the 'g' format; -1 means shortest.
func writeTerm(b *strings.Builder, t Term, first bool, prec int) {
	switch {
	case !first && t.Coef >= 0:
		b.WriteString(" + ")
	case !first:
		b.WriteString(" - ")
	case t.Coef < 0:
		b.WriteByte('-')
	}

	abs := math.Abs(t.Coef)
	printCoef := abs != 1 || t.Exp == 0
	if printCoef {
		// The sign is already written; FormatFloat would add "+" to +Inf.
		b.WriteString(strings.TrimPrefix(strconv.FormatFloat(abs, 'g', prec, 64), "+"))
	}
	if t.Exp == 0 {
		return
	}
	if printCoef {
		b.WriteByte('*')
	}
	b.WriteByte('x')
	if t.Exp != 1 {
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(t.Exp))
	}
}
