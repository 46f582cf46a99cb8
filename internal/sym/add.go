package sym

import "math"

// Add adds two values. Number addition is overflow-checked: a result beyond
// the domain maximum is Huge, beyond the minimum NegHuge. Sentinel operands
// follow the propagation rules of sentinelAdd. Compound operands are
// simplified first; those that stay compound yield Unknown.
func Add(lhs, rhs Sym) Sym {
	a, aok := operand(lhs)
	b, bok := operand(rhs)
	if !aok || !bok {
		return Unknown
	}

	if a.Kind == KindNumber && b.Kind == KindNumber {
		return addChecked(a.N, b.N)
	}
	return sentinelAdd(a, b)
}

// Sub subtracts rhs from lhs as addition of the negation. Negating the
// minimum representable integer is itself an overflow and maps straight to
// NegHuge; the operands were already dangerously close to the domain edge.
func Sub(lhs, rhs Sym) Sym {
	a, aok := operand(lhs)
	b, bok := operand(rhs)
	if !aok || !bok {
		return Unknown
	}

	if a.Kind == KindNumber && b.Kind == KindNumber {
		if b.N == math.MinInt32 {
			return NegHuge
		}
		return addChecked(a.N, -b.N)
	}
	return sentinelAdd(a, b.Neg())
}

// sentinelAdd defines addition where at least one operand is a sentinel.
//
// Undefined and Complex dominate. Huge-class values absorb additions that
// cannot pull them back into the domain (same-sign Huge, any Epsilon-class,
// any Number pushing away from the boundary) and degrade to Unknown when the
// other operand works against them, since the overflow sentinel retains no
// magnitude to subtract from. Epsilon-class sums are never recoverable as a
// class: a sub-unit offset moves a value off every representable integer.
func sentinelAdd(a, b Atom) Sym {
	if a.Kind == KindUndefined || b.Kind == KindUndefined {
		return Undefined
	}
	if a.Kind == KindComplex || b.Kind == KindComplex {
		return Complex
	}
	if a.Kind == KindUnknown || b.Kind == KindUnknown {
		return Unknown
	}

	// Order the huge-class operand first to halve the cases.
	if b.IsHugeClass() && !a.IsHugeClass() {
		a, b = b, a
	}

	if a.IsHugeClass() {
		switch {
		case b.IsHugeClass():
			if a.Kind == b.Kind {
				return a
			}
			// Huge + NegHuge spans the whole domain.
			return Unknown
		case b.IsEpsilonClass():
			// A sub-unit nudge cannot cross back over the boundary.
			return a
		case b.Kind == KindNumber:
			if b.N == 0 || a.IsPositive() == (b.N > 0) {
				return a
			}
			return Unknown
		}
	}

	// Remaining combinations involve Epsilon-class operands only.
	return Unknown
}
