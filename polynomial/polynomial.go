// SPDX-License-Identifier: MIT
//
// File: polynomial.go
// Role: Constructors, SetTerm and read-only queries.
// Policy:
//   - Every exported mutator leaves the receiver normalized.
//   - A nil *Polynomial reads as the zero polynomial in every query.

package polynomial

// New returns the zero polynomial with room for capacityHint terms.
// The hint is clamped to at least 1 and has no semantic effect.
func New(capacityHint int) *Polynomial {
	return &Polynomial{terms: make([]Term, 0, max(1, capacityHint))}
}

// FromTerms builds a normalized polynomial from terms in any order.
// Terms sharing an exponent are summed and exact-zero sums are dropped.
//
// Complexity: O(n²) accumulate + O(n log n) sort.
func FromTerms(terms ...Term) *Polynomial {
	p := New(len(terms))
	for _, t := range terms {
		p.addInPlace(t.Exp, t.Coef)
	}
	p.normalize()

	return p
}

// SetTerm adds coef to the term at exp, creating it if absent, and
// re-normalizes. A sum of exactly zero removes the term:
//
//	p.SetTerm(2, 5)
//	p.SetTerm(2, -5) // p is now the zero polynomial
func (p *Polynomial) SetTerm(exp int, coef float64) {
	p.addInPlace(exp, coef)
	p.normalize()
}

// Terms returns a copy of the terms in descending exponent order.
func (p *Polynomial) Terms() []Term {
	if p == nil || len(p.terms) == 0 {
		return nil
	}

	return append([]Term(nil), p.terms...)
}

// Len returns the number of stored (non-zero) terms.
func (p *Polynomial) Len() int {
	if p == nil {
		return 0
	}

	return len(p.terms)
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return p.Len() == 0
}

// Degree returns the highest exponent, or -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	if p.IsZero() {
		return -1
	}

	return p.terms[0].Exp
}

// Coef returns the coefficient at exp, 0 if there is no such term.
func (p *Polynomial) Coef(exp int) float64 {
	for _, t := range p.view() {
		if t.Exp == exp {
			return t.Coef
		}
	}

	return 0
}

// Clone returns a deep copy of p. Mutating the clone never affects p.
// Cloning nil yields a usable zero polynomial.
func (p *Polynomial) Clone() *Polynomial {
	c := New(p.capacity())
	c.terms = append(c.terms, p.view()...)

	return c
}

// Equal reports whether p and q hold exactly the same terms.
// Coefficients are compared with ==, so NaN terms never compare equal.
func (p *Polynomial) Equal(q *Polynomial) bool {
	a, b := p.view(), q.view()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// view exposes the stored terms without copying; callers must not write.
func (p *Polynomial) view() []Term {
	if p == nil {
		return nil
	}

	return p.terms
}

func (p *Polynomial) capacity() int {
	if p == nil {
		return 0
	}

	return cap(p.terms)
}
