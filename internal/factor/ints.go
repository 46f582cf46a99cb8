package factor

// SqrtI returns the exact integer square root of n, if one exists.
//
// Negative inputs have no integer square root. Zero and one are their own
// square roots. For n >= 2 candidate roots are scanned upward from 2, so the
// cost is O(√n).
func SqrtI(n int32) (int32, bool) {
	switch {
	case n < 0:
		return 0, false
	case n <= 1:
		return n, true
	}

	for root := int32(2); ; root++ {
		sq := int64(root) * int64(root)
		switch {
		case sq == int64(n):
			return root, true
		case sq > int64(n):
			return 0, false
		}
	}
}

// IsOdd reports whether n is odd. Sign-independent: negative odds are odd.
func IsOdd(n int32) bool {
	return n&1 != 0
}

// IsEven reports whether n is even.
func IsEven(n int32) bool {
	return !IsOdd(n)
}

// IsPrime reports whether n is prime. Zero is neither prime nor composite,
// and the test is sign-independent. The scan short-circuits on the first
// non-trivial factor found.
func IsPrime(n int32) bool {
	a := abs64(n)
	if a < 2 {
		return false
	}
	for i := int64(2); i < a; i++ {
		if a%i == 0 {
			return false
		}
	}
	return true
}

// IsComposite reports whether n has a factor other than 1 and itself.
func IsComposite(n int32) bool {
	return abs64(n) >= 2 && !IsPrime(n)
}

// abs64 widens before negating so that math.MinInt32 is handled.
func abs64(n int32) int64 {
	if n < 0 {
		return -int64(n)
	}
	return int64(n)
}
