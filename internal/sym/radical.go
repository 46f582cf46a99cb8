package sym

import (
	"math"

	"github.com/GriffinCanCode/Algebra/internal/factor"
)

// Simplify reduces the radical to its canonical Sym.
//
// A negative radicand is the square root of a negative: Complex. A radicand
// of 0 is zero, a radicand of 1 is the coefficient alone. Otherwise, when the
// radicand is a perfect square the radical collapses to an integer; when it
// is not, the greatest perfect-square factor of the squared radical is
// extracted, leaving a radicand with no perfect-square factor above 1.
func (r Radical) Simplify() Sym {
	switch {
	case r.Rad < 0:
		return Complex
	case r.Rad == 0:
		return Num(0)
	case r.Rad == 1:
		return Num(r.Coef)
	case r.Coef == 0:
		return Num(0)
	}

	if root, ok := factor.SqrtI(r.Rad); ok {
		return mulChecked(r.Coef, root)
	}

	// Square the whole radical, then search its factor pairs (in both
	// orderings) for the greatest perfect-square factor. The pair (1, n) is
	// always valid, so the search always produces a result.
	squared := int64(r.Coef) * int64(r.Coef) * int64(r.Rad)
	if squared > math.MaxInt32 {
		return Huge
	}
	n := int32(squared)

	gpsRoot, gpsCofactor := int32(1), n
	for _, pair := range factor.Factors(n) {
		for _, ordering := range [2][2]int32{
			{pair.Common, pair.Associated},
			{pair.Associated, pair.Common},
		} {
			if root, ok := factor.SqrtI(ordering[0]); ok && root > gpsRoot {
				gpsRoot, gpsCofactor = root, ordering[1]
			}
		}
	}

	return Radical{Coef: gpsRoot, Rad: gpsCofactor}
}

// Sqrt returns the square root of n as a Sym: Complex for negatives, the
// exact root when n is a perfect square, and the unevaluated radical √n
// otherwise.
func Sqrt(n int32) Sym {
	if n < 0 {
		return Complex
	}
	if root, ok := factor.SqrtI(n); ok {
		return Num(root)
	}
	return RadicalOf(n)
}
