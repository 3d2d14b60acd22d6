// File: normalize.go
// Role: Private term-level primitives shared by SetTerm, parsing, Add and Mult.
// Determinism:
//   - Zero is exact: a coefficient is dropped only when it == 0.

package polynomial

import (
	"cmp"
	"slices"
)

// appendTerm adds a raw term without merging or sorting. Exact zeros are
// dropped. Used by bulk builders that normalize afterwards.
func (p *Polynomial) appendTerm(exp int, coef float64) {
	if coef == 0 {
		return
	}
	p.terms = append(p.terms, Term{Exp: exp, Coef: coef})
}

// addInPlace accumulates coef into the term at exp, scanning linearly.
// A term whose sum becomes exactly zero is removed, keeping the relative
// order of the rest. Unknown exponents are appended unsorted.
//
// Complexity: O(n) per call.
func (p *Polynomial) addInPlace(exp int, coef float64) {
	if coef == 0 {
		return
	}
	for i := range p.terms {
		if p.terms[i].Exp != exp {
			continue
		}
		p.terms[i].Coef += coef
		if p.terms[i].Coef == 0 {
			p.terms = slices.Delete(p.terms, i, i+1)
		}

		return
	}
	p.appendTerm(exp, coef)
}

// normalize restores the canonical form:
//  1. sort by exponent, descending;
//  2. sum each run of equal exponents;
//  3. keep the run's term unless the sum is exactly zero.
//
// Normalizing a normalized polynomial leaves it unchanged.
//
// Complexity: O(n log n).
func (p *Polynomial) normalize() {
	if len(p.terms) <= 1 {
		return
	}
	slices.SortFunc(p.terms, func(a, b Term) int {
		return cmp.Compare(b.Exp, a.Exp)
	})

	w := 0
	for i := 0; i < len(p.terms); {
		exp := p.terms[i].Exp
		var sum float64
		for ; i < len(p.terms) && p.terms[i].Exp == exp; i++ {
			sum += p.terms[i].Coef
		}
		if sum != 0 {
			p.terms[w] = Term{Exp: exp, Coef: sum}
			w++
		}
	}
	p.terms = p.terms[:w]
}
