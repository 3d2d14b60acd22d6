package polynomial

// White-box bridge: exposes the private term primitives to polynomial_test
// without widening the production API.

// Raw builds a polynomial from terms verbatim, skipping normalization, so
// tests can feed unsorted or duplicated input to the primitives below.
func Raw(terms ...Term) *Polynomial {
	return &Polynomial{terms: append([]Term(nil), terms...)}
}

// RawTerms returns the stored slice as-is (no copy, no nil mapping).
func RawTerms(p *Polynomial) []Term { return p.terms }

// Capacity exposes the backing capacity for pre-allocation checks.
func Capacity(p *Polynomial) int { return cap(p.terms) }

var (
	ExportedNormalize  = (*Polynomial).normalize
	ExportedAppendTerm = (*Polynomial).appendTerm
	ExportedAddInPlace = (*Polynomial).addInPlace
)
