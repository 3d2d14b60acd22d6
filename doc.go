// Package sparsepoly is a small playground for sparse univariate
// polynomials: integer exponents, float64 coefficients, only non-zero
// terms stored.
//
// 🚀 What is in here?
//
//	• polynomial/    — Term and Polynomial: SetTerm, Add, Mult, Eval,
//	                   fmt.Scanner input and fmt.Formatter output
//	• cmd/polycalc/  — command-line driver: reads p and q, prints p, q,
//	                   p+q, p·q and p(2)
//
// ✨ Why?
//
//   - Canonical form everywhere – descending exponents, one term per
//     exponent, no zero coefficients
//   - Pure arithmetic – Add and Mult never touch their operands
//   - Plain fmt integration – fmt.Fscan(r, p) and fmt.Printf("%.3v", p)
//
// Quick example:
//
//	3  4 3  2 2  0 1    →    3*x^4 + 2*x^2 + 1
//
// Dive into polynomial/example_test.go for runnable examples.
//
//	go get github.com/katalvlaran/sparsepoly/polynomial
package sparsepoly
