package sym

// Pow raises base to the power of exp.
//
// A base of 0 or 1 is absorbing and returned unchanged. A Number exponent is
// applied by repeated multiplication through Mul, so overflow mid-computation
// correctly degrades to Huge/NegHuge and propagates through the remaining
// factors; a negative exponent then takes the reciprocal through Div.
//
// Sentinel exponents carry no magnitude, and the parity of an unrepresented
// magnitude is not determinable. The cases below fix the behavior: a Huge
// exponent keeps growing the result (Huge), a NegHuge exponent is a
// reciprocal of that (Epsilon), Undefined and Complex dominate, and
// Epsilon-class or Unknown exponents are indeterminate.
func Pow(base, exp Sym) Sym {
	if b, ok := base.(Atom); ok && b.Kind == KindNumber && (b.N == 0 || b.N == 1) {
		return base
	}

	e, ok := operand(exp)
	if !ok {
		return Unknown
	}

	switch e.Kind {
	case KindNumber:
		result := Sym(Num(1))
		for i := abs64(e.N); i > 0; i-- {
			result = Mul(result, base)
		}
		if e.N >= 0 {
			return result
		}
		return Div(Num(1), result)

	case KindUndefined:
		return Undefined
	case KindComplex:
		return Complex
	case KindHuge:
		return Huge
	case KindNegHuge:
		return Epsilon
	}

	return Unknown
}
