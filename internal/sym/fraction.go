package sym

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/Algebra/internal/factor"
)

// Simplify reduces the fraction to its canonical Sym. The rules form an
// ordered decision table; the first match wins.
//
//  1. Either side Complex: Complex.
//  2. Either side Undefined, or a zero denominator: Undefined.
//  3. Either side Unknown: Unknown.
//  4. Zero numerator: zero.
//  5. Denominator of 1: the numerator unchanged.
//  6. Huge/Epsilon-class numerator over a Number: the numerator, sign-flipped
//     when the denominator is negative.
//  7. Number over Number: exact quotient when the denominator divides evenly,
//     otherwise the fraction reduced by the greatest common factor with the
//     sign carried on the numerator.
//  8. Huge-class over Huge-class: Huge-class, sign per agreement.
//  9. Anything else over Huge-class: Epsilon-class, sign per agreement.
// 10. Anything over Epsilon-class: Huge-class, sign per agreement; except
//     Epsilon-class over Epsilon-class, where the true ratio of two
//     unrepresentable magnitudes is indeterminate: Unknown.
//
// Simplification is idempotent: re-simplifying a canonical fraction returns
// an equal value.
func (f Fraction) Simplify() Sym {
	num, den := f.Num, f.Den

	// A fraction's sign is the XNOR of its operands' signs.
	pos := num.IsPositive() == den.IsPositive()

	switch {
	case num.Kind == KindComplex || den.Kind == KindComplex:
		return Complex

	case num.Kind == KindUndefined || den.Kind == KindUndefined:
		return Undefined
	case den.Kind == KindNumber && den.N == 0:
		return Undefined

	case num.Kind == KindUnknown || den.Kind == KindUnknown:
		return Unknown

	case num.Kind == KindNumber && num.N == 0:
		return Num(0)

	case den.Kind == KindNumber && den.N == 1:
		return num
	}

	// Huge and Epsilon divided by a number remain what they were, changing
	// sign when the denominator differs from them.
	if (num.IsHugeClass() || num.IsEpsilonClass()) && den.Kind == KindNumber {
		if pos != num.IsPositive() {
			return num.Neg()
		}
		return num
	}

	if num.Kind == KindNumber && den.Kind == KindNumber {
		return reduceNumbers(num.N, den.N, pos)
	}

	if num.IsHugeClass() && den.IsHugeClass() {
		return hugeClass(pos)
	}

	if den.IsHugeClass() {
		if pos {
			return Epsilon
		}
		return NegEpsilon
	}

	if den.IsEpsilonClass() {
		// Division by a sub-unit magnitude grows the numerator, except when
		// the numerator is itself Epsilon-class: two unrepresentable
		// magnitudes have an indeterminate ratio.
		if num.IsEpsilonClass() {
			return Unknown
		}
		return hugeClass(pos)
	}

	panic(fmt.Sprintf("sym: unhandled fraction %v/%v", num.Kind, den.Kind))
}

// reduceNumbers handles the Number-over-Number arm of the decision table.
func reduceNumbers(num, den int32, pos bool) Sym {
	if num%den == 0 {
		// The most negative number over -1 is the one exact quotient that
		// itself overflows the domain.
		if num == math.MinInt32 && den == -1 {
			return Huge
		}
		return Num(num / den)
	}

	// The minimum representable magnitude has no absolute value in-domain;
	// such a fraction is returned unreduced rather than mangled.
	if num == math.MinInt32 || den == math.MinInt32 {
		return Fraction{Num: Num(num), Den: Num(den)}
	}

	numAbs, denAbs := abs32(num), abs32(den)
	g := factor.GCF([]int32{numAbs, denAbs})

	sign := int32(1)
	if !pos {
		sign = -1
	}
	reducedNum, reducedDen := numAbs/g, denAbs/g
	if reducedDen == 1 {
		return Num(sign * reducedNum)
	}
	return Fraction{Num: Num(sign * reducedNum), Den: Num(reducedDen)}
}

func hugeClass(pos bool) Atom {
	if pos {
		return Huge
	}
	return NegHuge
}
