package sym

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	t.Run("small numbers", func(t *testing.T) {
		for a := int32(-10); a <= 10; a++ {
			for b := int32(-10); b <= 10; b++ {
				assert.True(t, Add(Num(a), Num(b)).Equal(Num(a+b)))
			}
		}
	})

	t.Run("overflow maps to huge", func(t *testing.T) {
		got, ok := AsAtom(Add(Num(math.MaxInt32), Num(1)))
		assert.True(t, ok)
		assert.Equal(t, Huge, got)
	})

	t.Run("underflow maps to negative huge", func(t *testing.T) {
		got, ok := AsAtom(Add(Num(math.MinInt32), Num(-1)))
		assert.True(t, ok)
		assert.Equal(t, NegHuge, got)
	})

	t.Run("no false overflow at the boundary", func(t *testing.T) {
		assert.True(t, Add(Num(math.MinInt32), Num(math.MaxInt32)).Equal(Num(-1)))
		assert.True(t, Add(Num(math.MaxInt32), Num(0)).Equal(Num(math.MaxInt32)))
		assert.True(t, Add(Num(math.MaxInt32), Num(-1)).Equal(Num(math.MaxInt32-1)))
	})

	t.Run("halves past the midpoint overflow", func(t *testing.T) {
		const hugePart = math.MaxInt32/2 + 1
		got, ok := AsAtom(Add(Num(hugePart), Num(hugePart)))
		assert.True(t, ok)
		assert.Equal(t, Huge, got)
	})

	t.Run("sentinel propagation", func(t *testing.T) {
		sum, _ := AsAtom(Add(Huge, Num(5)))
		assert.Equal(t, Huge, sum)

		sum, _ = AsAtom(Add(Huge, Huge))
		assert.Equal(t, Huge, sum)

		sum, _ = AsAtom(Add(Huge, NegHuge))
		assert.Equal(t, Unknown, sum)

		sum, _ = AsAtom(Add(Huge, Epsilon))
		assert.Equal(t, Huge, sum)

		sum, _ = AsAtom(Add(Undefined, Num(1)))
		assert.Equal(t, Undefined, sum)

		sum, _ = AsAtom(Add(Num(1), Epsilon))
		assert.Equal(t, Unknown, sum)
	})
}

func TestSub(t *testing.T) {
	t.Run("small numbers", func(t *testing.T) {
		for a := int32(-10); a <= 10; a++ {
			for b := int32(-10); b <= 10; b++ {
				assert.True(t, Sub(Num(a), Num(b)).Equal(Num(a-b)))
			}
		}
	})

	t.Run("subtracting the minimum maps to negative huge", func(t *testing.T) {
		got, ok := AsAtom(Sub(Num(0), Num(math.MinInt32)))
		assert.True(t, ok)
		assert.Equal(t, NegHuge, got)
	})

	t.Run("underflow maps to negative huge", func(t *testing.T) {
		got, ok := AsAtom(Sub(Num(math.MinInt32), Num(1)))
		assert.True(t, ok)
		assert.Equal(t, NegHuge, got)
	})
}

func TestMul(t *testing.T) {
	t.Run("small numbers", func(t *testing.T) {
		for a := int32(-10); a <= 10; a++ {
			for b := int32(-10); b <= 10; b++ {
				assert.True(t, Mul(Num(a), Num(b)).Equal(Num(a*b)))
			}
		}
	})

	t.Run("overflow keeps the product sign", func(t *testing.T) {
		got, _ := AsAtom(Mul(Num(math.MaxInt32), Num(2)))
		assert.Equal(t, Huge, got)

		got, _ = AsAtom(Mul(Num(2), Num(math.MaxInt32)))
		assert.Equal(t, Huge, got)

		got, _ = AsAtom(Mul(Num(math.MaxInt32), Num(-2)))
		assert.Equal(t, NegHuge, got)

		got, _ = AsAtom(Mul(Num(-2), Num(math.MaxInt32)))
		assert.Equal(t, NegHuge, got)
	})

	t.Run("finite sentinels times zero are zero", func(t *testing.T) {
		for _, a := range []Atom{Huge, NegHuge, Epsilon, NegEpsilon} {
			assert.True(t, Mul(a, Num(0)).Equal(Num(0)), "%v", a)
		}
	})

	t.Run("huge scaling keeps the class", func(t *testing.T) {
		got, _ := AsAtom(Mul(Huge, Num(3)))
		assert.Equal(t, Huge, got)

		got, _ = AsAtom(Mul(Huge, Num(-3)))
		assert.Equal(t, NegHuge, got)

		got, _ = AsAtom(Mul(NegHuge, NegHuge))
		assert.Equal(t, Huge, got)
	})

	t.Run("indeterminate products are unknown", func(t *testing.T) {
		got, _ := AsAtom(Mul(Huge, Epsilon))
		assert.Equal(t, Unknown, got)

		got, _ = AsAtom(Mul(Epsilon, Num(1000)))
		assert.Equal(t, Unknown, got)
	})

	t.Run("epsilon shrinks under epsilon", func(t *testing.T) {
		got, _ := AsAtom(Mul(Epsilon, Epsilon))
		assert.Equal(t, Epsilon, got)

		got, _ = AsAtom(Mul(Epsilon, NegEpsilon))
		assert.Equal(t, NegEpsilon, got)
	})
}

func TestDiv(t *testing.T) {
	t.Run("over one", func(t *testing.T) {
		for n := int32(-10); n <= 10; n++ {
			assert.True(t, Div(Num(n), Num(1)).Equal(Num(n)))
		}
	})

	t.Run("over zero is undefined", func(t *testing.T) {
		for n := int32(1); n <= 10; n++ {
			got, ok := AsAtom(Div(Num(n), Num(0)))
			assert.True(t, ok)
			assert.Equal(t, Undefined, got)
		}
	})

	t.Run("inexact quotient is a reduced fraction", func(t *testing.T) {
		assert.True(t, Div(Num(6), Num(8)).Equal(NewFraction(3, 4)))
	})

	t.Run("number over huge is epsilon", func(t *testing.T) {
		got, _ := AsAtom(Div(Num(3), Huge))
		assert.Equal(t, Epsilon, got)

		got, _ = AsAtom(Div(Num(-3), Huge))
		assert.Equal(t, NegEpsilon, got)
	})

	t.Run("zero over huge is zero", func(t *testing.T) {
		assert.True(t, Div(Num(0), Huge).Equal(Num(0)))
	})
}

func TestPow(t *testing.T) {
	t.Run("zero and one are absorbing", func(t *testing.T) {
		for exp := int32(-5); exp <= 5; exp++ {
			assert.True(t, Pow(Num(0), Num(exp)).Equal(Num(0)))
			assert.True(t, Pow(Num(1), Num(exp)).Equal(Num(1)))
		}
	})

	t.Run("positive exponents", func(t *testing.T) {
		assert.True(t, Pow(Num(2), Num(10)).Equal(Num(1024)))
		assert.True(t, Pow(Num(-3), Num(3)).Equal(Num(-27)))
		assert.True(t, Pow(Num(5), Num(0)).Equal(Num(1)))
	})

	t.Run("negative exponent takes the reciprocal", func(t *testing.T) {
		assert.True(t, Pow(Num(2), Num(-2)).Equal(NewFraction(1, 4)))
		assert.True(t, Pow(Num(2), Num(-1)).Equal(NewFraction(1, 2)))
	})

	t.Run("overflow mid-computation degrades to huge", func(t *testing.T) {
		got, ok := AsAtom(Pow(Num(2), Num(40)))
		assert.True(t, ok)
		assert.Equal(t, Huge, got)
	})

	t.Run("overflowed reciprocal is epsilon", func(t *testing.T) {
		got, ok := AsAtom(Pow(Num(2), Num(-40)))
		assert.True(t, ok)
		assert.Equal(t, Epsilon, got)
	})

	t.Run("sentinel exponents", func(t *testing.T) {
		got, _ := AsAtom(Pow(Num(2), Huge))
		assert.Equal(t, Huge, got)

		got, _ = AsAtom(Pow(Num(2), NegHuge))
		assert.Equal(t, Epsilon, got)

		got, _ = AsAtom(Pow(Num(2), Undefined))
		assert.Equal(t, Undefined, got)

		got, _ = AsAtom(Pow(Num(2), Epsilon))
		assert.Equal(t, Unknown, got)
	})
}
