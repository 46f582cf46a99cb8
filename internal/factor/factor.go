package factor

import "math"

// Factor is a single factor of a number: Common * Associated equals the
// number being factored.
type Factor struct {
	Common     int32 `json:"common"`
	Associated int32 `json:"associated"`
}

// CommonFactor is a factor shared among multiple numbers: Common multiplied
// by each Associated element gives back the original numbers.
type CommonFactor struct {
	Common     int32   `json:"common"`
	Associated []int32 `json:"associated"`
}

// CommonFactors returns every factor shared between the given numbers, as
// (factor, quotients) pairs, starting with the guaranteed factor 1.
//
// Candidates run from 2 up to the minimum absolute value; a candidate is kept
// when it evenly divides every element. Panics on an empty set: that is a
// caller contract violation, not a data condition.
func CommonFactors(ns []int32) []CommonFactor {
	if len(ns) == 0 {
		panic("factor: CommonFactors on empty set")
	}

	out := []CommonFactor{{Common: 1, Associated: append([]int32(nil), ns...)}}

	limit := minAbs(ns)
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	for i := int64(2); i <= limit; i++ {
		if !dividesAll(ns, i) {
			continue
		}
		assoc := make([]int32, len(ns))
		for j, n := range ns {
			assoc[j] = int32(int64(n) / i)
		}
		out = append(out, CommonFactor{Common: int32(i), Associated: assoc})
	}
	return out
}

// Factors returns the ordered factor pairs of n, starting with (1, n).
func Factors(n int32) []Factor {
	common := CommonFactors([]int32{n})
	out := make([]Factor, len(common))
	for i, cf := range common {
		out[i] = Factor{Common: cf.Common, Associated: cf.Associated[0]}
	}
	return out
}

// GCF returns the greatest common factor of the given numbers. Candidates are
// scanned downward from the minimum absolute value; 1 is the guaranteed
// fallback. Panics on an empty set.
func GCF(ns []int32) int32 {
	if len(ns) == 0 {
		panic("factor: GCF on empty set")
	}

	limit := minAbs(ns)
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	for i := limit; i >= 2; i-- {
		if dividesAll(ns, i) {
			return int32(i)
		}
	}
	return 1
}

// LCM returns the least common multiple of the given numbers. The second
// return value is false when the running product of the inputs overflows the
// int32 domain; the caller maps that to the Huge sentinel.
//
// The overflow check is conservative: the product can overflow even when the
// true least common multiple is representable (e.g. two equal large powers of
// two). The trade-off favors a simple, always-terminating scan over
// optimality. Panics on an empty set.
func LCM(ns []int32) (int32, bool) {
	if len(ns) == 0 {
		panic("factor: LCM on empty set")
	}

	product := int64(1)
	for _, n := range ns {
		product *= abs64(n)
		if product > math.MaxInt32 {
			return 0, false
		}
	}
	if product == 0 {
		return 0, true
	}

	for c := maxAbs(ns); c < product; c++ {
		if multipleOfAll(ns, c) {
			return int32(c), true
		}
	}
	return int32(product), true
}

func minAbs(ns []int32) int64 {
	min := abs64(ns[0])
	for _, n := range ns[1:] {
		if a := abs64(n); a < min {
			min = a
		}
	}
	return min
}

func maxAbs(ns []int32) int64 {
	max := abs64(ns[0])
	for _, n := range ns[1:] {
		if a := abs64(n); a > max {
			max = a
		}
	}
	return max
}

func dividesAll(ns []int32, i int64) bool {
	for _, n := range ns {
		if abs64(n)%i != 0 {
			return false
		}
	}
	return true
}

func multipleOfAll(ns []int32, c int64) bool {
	for _, n := range ns {
		a := abs64(n)
		if a == 0 || c%a != 0 {
			return false
		}
	}
	return true
}
