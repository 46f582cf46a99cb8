package sym

// Mul multiplies two values. Number multiplication is overflow-checked, with
// the sentinel matching the sign of the true product. Sentinel operands
// follow sentinelMul. Compound operands are simplified first; those that
// stay compound yield Unknown.
func Mul(lhs, rhs Sym) Sym {
	a, aok := operand(lhs)
	b, bok := operand(rhs)
	if !aok || !bok {
		return Unknown
	}

	if a.Kind == KindNumber && b.Kind == KindNumber {
		return mulChecked(a.N, b.N)
	}
	return sentinelMul(a, b)
}

// sentinelMul defines multiplication where at least one operand is a
// sentinel.
//
// Undefined and Complex dominate. Huge and Epsilon are finite, so either
// times zero is exactly zero. Scaling a Huge-class value by a nonzero number
// only grows its magnitude: the class survives with the combined sign. The
// product of two Epsilon-class values shrinks below either factor and stays
// Epsilon-class. An Epsilon-class value scaled by a number of magnitude
// above 1, or a Huge times an Epsilon, could land anywhere: Unknown.
func sentinelMul(a, b Atom) Sym {
	if a.Kind == KindUndefined || b.Kind == KindUndefined {
		return Undefined
	}
	if a.Kind == KindComplex || b.Kind == KindComplex {
		return Complex
	}
	if a.Kind == KindUnknown || b.Kind == KindUnknown {
		return Unknown
	}

	// Order the number operand last to halve the cases.
	if a.Kind == KindNumber {
		a, b = b, a
	}

	pos := a.IsPositive() == b.IsPositive()

	if b.Kind == KindNumber {
		switch {
		case b.N == 0:
			return Num(0)
		case a.IsHugeClass():
			return hugeClass(pos)
		case b.N == 1 || b.N == -1:
			// Unit scaling preserves the Epsilon class exactly.
			return epsilonClass(pos)
		}
		return Unknown
	}

	switch {
	case a.IsHugeClass() && b.IsHugeClass():
		return hugeClass(pos)
	case a.IsEpsilonClass() && b.IsEpsilonClass():
		return epsilonClass(pos)
	}

	// Huge against Epsilon: one magnitude above the domain, one below unity,
	// their product is indeterminate.
	return Unknown
}

func epsilonClass(pos bool) Atom {
	if pos {
		return Epsilon
	}
	return NegEpsilon
}
