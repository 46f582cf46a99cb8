package sym

import "math"

// addChecked adds two bounded integers, mapping overflow to Huge and
// underflow to NegHuge. The sum is computed in int64, which cannot overflow
// for int32 operands, and classified against the domain bounds.
func addChecked(lhs, rhs int32) Sym {
	sum := int64(lhs) + int64(rhs)
	switch {
	case sum > math.MaxInt32:
		return Huge
	case sum < math.MinInt32:
		return NegHuge
	}
	return Num(int32(sum))
}

// mulChecked multiplies two bounded integers with the same overflow mapping
// as addChecked, matching the sign of the true product.
func mulChecked(lhs, rhs int32) Sym {
	product := int64(lhs) * int64(rhs)
	switch {
	case product > math.MaxInt32:
		return Huge
	case product < math.MinInt32:
		return NegHuge
	}
	return Num(int32(product))
}

// abs32 must not be called with math.MinInt32; callers handle that magnitude
// explicitly before reducing.
func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

func abs64(n int32) int64 {
	if n < 0 {
		return -int64(n)
	}
	return int64(n)
}

// operand normalizes an operator input: atoms pass through, expressions are
// simplified first. Operands that stay compound after simplification have no
// defined atom arithmetic yet; the second return value reports that.
func operand(s Sym) (Atom, bool) {
	switch v := s.(type) {
	case Atom:
		return v, true
	case Expr:
		if a, ok := v.Simplify().(Atom); ok {
			return a, true
		}
	}
	return Atom{}, false
}
