package sym

// Div divides lhs by rhs by constructing a fraction from the two operands
// and reducing it. A zero divisor yields Undefined, a Huge-class divisor
// yields Epsilon-class, an exact quotient yields a Number, and anything else
// the reduced fraction. Compound operands are simplified first; those that
// stay compound yield Unknown.
func Div(lhs, rhs Sym) Sym {
	num, nok := operand(lhs)
	den, dok := operand(rhs)
	if !nok || !dok {
		return Unknown
	}
	return Fraction{Num: num, Den: den}.Simplify()
}
