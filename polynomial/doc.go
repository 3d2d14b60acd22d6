// Package polynomial implements a sparse univariate polynomial with integer
// exponents and float64 coefficients.
//
// 🚀 What is it?
//
//	Only the non-zero terms are stored, so 3x^1000 + 1 costs two terms,
//	not a thousand and one slots. Every Polynomial observable through the
//	public API is kept in canonical form:
//	  • terms sorted by strictly descending exponent
//	  • at most one term per exponent
//	  • no term whose coefficient is exactly 0.0
//
// ✨ Key features:
//   - SetTerm accumulates into an existing exponent and re-normalizes
//   - Add (merge walk) and Mult (pairwise accumulate) return fresh values
//   - Eval sums coef·x^exp with math.Pow (0^0 = 1)
//   - fmt.Scanner: fmt.Fscan(r, p) reads "n  e1 c1  e2 c2 ..."
//   - fmt.Formatter: "%v" renders "3*x^4 + 2*x^2 + 1", "%.3v" limits digits
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sparsepoly/polynomial"
//
//	p, err := polynomial.ParseString("3  4 3  2 2  0 1")
//	if err != nil {
//	  // errors.Is(err, polynomial.ErrInputFormat)
//	}
//	q := polynomial.New(4)
//	q.SetTerm(2, 1)
//	q.SetTerm(0, 5)
//
//	fmt.Println(p.Add(q))  // 3*x^4 + 3*x^2 + 6
//	fmt.Println(p.Eval(2)) // 57
//
// Zero is tested with exact equality: a cancellation that leaves a tiny
// residue such as 1e-17 keeps the term.
//
// A *Polynomial is not safe for concurrent mutation. Arithmetic never writes
// to its operands, so concurrent reads of an unmutated value are fine.
//
// Performance:
//
//   - Add:  O(n + m)
//   - Mult: O(n·m·k), k = result size so far (linear accumulate per product)
//   - Eval: O(n) calls to math.Pow
package polynomial
