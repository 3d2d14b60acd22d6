// SPDX-License-Identifier: MIT
//
// File: arithmetic.go
// Role: Add and Mult. Both are pure: operands are read, never written, and
// the result owns fresh storage.

package polynomial

// Add returns a + b.
//
// Algorithm (merge walk over descending exponents):
//  1. While either side has terms left, compare the leading exponents.
//  2. The side with the strictly greater exponent (or the only side left)
//     contributes its term unchanged.
//  3. Equal exponents are summed; the sum is kept only if it is non-zero.
//  4. Normalize the result.
//
// Step 4 is a no-op for normalized operands, which every Polynomial built
// through this package is.
//
// Complexity: O(n + m).
func Add(a, b *Polynomial) *Polynomial {
	at, bt := a.view(), b.view()
	r := New(max(a.capacity(), b.capacity()))

	i, j := 0, 0
	for i < len(at) || j < len(bt) {
		switch {
		case j == len(bt) || (i < len(at) && at[i].Exp > bt[j].Exp):
			r.appendTerm(at[i].Exp, at[i].Coef)
			i++
		case i == len(at) || bt[j].Exp > at[i].Exp:
			r.appendTerm(bt[j].Exp, bt[j].Coef)
			j++
		default:
			// appendTerm drops an exact-zero sum.
			r.appendTerm(at[i].Exp, at[i].Coef+bt[j].Coef)
			i++
			j++
		}
	}
	r.normalize()

	return r
}

// Mult returns a · b.
//
// Every pair of terms contributes coefA·coefB at expA+expB through the
// accumulate primitive; the result is normalized once at the end.
//
// Complexity: O(n·m) products, each accumulated in O(k) for a result of k
// terms so far. Meant for small sparse inputs.
func Mult(a, b *Polynomial) *Polynomial {
	at, bt := a.view(), b.view()
	r := New(len(at) + len(bt) + 4)
	for _, x := range at {
		for _, y := range bt {
			r.addInPlace(x.Exp+y.Exp, x.Coef*y.Coef)
		}
	}
	r.normalize()

	return r
}

// Add returns p + q. See the package-level Add.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	return Add(p, q)
}

// Mult returns p · q. See the package-level Mult.
func (p *Polynomial) Mult(q *Polynomial) *Polynomial {
	return Mult(p, q)
}
