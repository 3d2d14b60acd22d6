package polynomial

import "math"

// Eval returns Σ coef·x^exp over all terms.
//
// Powers come from math.Pow, so 0^0 = 1 and a negative exponent at x = 0
// yields ±Inf rather than an error.
func (p *Polynomial) Eval(x float64) float64 {
	var sum float64
	for _, t := range p.view() {
		sum += t.Coef * math.Pow(x, float64(t.Exp))
	}

	return sum
}
