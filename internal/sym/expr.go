package sym

import (
	"fmt"
	"strconv"
)

// Fraction is a rational expression built from two atoms. The numerator and
// denominator are atoms, never nested expressions.
type Fraction struct {
	// Num is the upper side of the fraction, the part being divided.
	Num Atom

	// Den is the lower side of the fraction, the part dividing the numerator.
	Den Atom
}

// NewFraction constructs a fraction from a pair of integers.
func NewFraction(num, den int32) Fraction {
	return Fraction{Num: Num(num), Den: Num(den)}
}

// FractionOf constructs a fraction from a pair of atoms.
func FractionOf(num, den Atom) Fraction {
	return Fraction{Num: num, Den: den}
}

func (Fraction) isSym()  {}
func (Fraction) isExpr() {}

// Equal compares two simplified fractions part-wise. It does not simplify:
// an unreduced fraction is not equal to its reduced form.
func (f Fraction) Equal(other Sym) bool {
	o, ok := other.(Fraction)
	if !ok {
		return false
	}
	return f.Num.Equal(o.Num) && f.Den.Equal(o.Den)
}

// String renders "{num}/{den}" using each atom's own rendering.
func (f Fraction) String() string {
	return f.Num.String() + "/" + f.Den.String()
}

// ASCII renders "{num}/{den}" using the ASCII fallbacks.
func (f Fraction) ASCII() string {
	return f.Num.ASCII() + "/" + f.Den.ASCII()
}

// Radical represents Coef * √Rad. Canonical form requires the radicand to
// have no perfect-square factor greater than 1, with Rad as small as
// possible. Only square roots are supported.
type Radical struct {
	// Coef is the coefficient the root is multiplied by.
	Coef int32

	// Rad is the radicand, the number being rooted.
	Rad int32
}

// NewRadical constructs a radical from a coefficient and radicand.
func NewRadical(coef, rad int32) Radical {
	return Radical{Coef: coef, Rad: rad}
}

// RadicalOf constructs √rad, with a coefficient of 1.
func RadicalOf(rad int32) Radical {
	return Radical{Coef: 1, Rad: rad}
}

// WholeRadical constructs a whole number expressed as a radical: n√1.
func WholeRadical(n int32) Radical {
	return Radical{Coef: n, Rad: 1}
}

func (Radical) isSym()  {}
func (Radical) isExpr() {}

// Equal compares two simplified radicals structurally.
func (r Radical) Equal(other Sym) bool {
	o, ok := other.(Radical)
	if !ok {
		return false
	}
	return r.Coef == o.Coef && r.Rad == o.Rad
}

// String renders the radical per the display contract: the coefficient alone
// when the radicand is 1, the root alone when the coefficient is 1, and
// "{coef}√{rad}" otherwise.
func (r Radical) String() string {
	switch {
	case r.Rad == 1:
		return strconv.FormatInt(int64(r.Coef), 10)
	case r.Coef == 1:
		return "√" + strconv.FormatInt(int64(r.Rad), 10)
	}
	return fmt.Sprintf("%d√%d", r.Coef, r.Rad)
}

// ASCII renders the radical with a sqrt() fallback.
func (r Radical) ASCII() string {
	switch {
	case r.Rad == 1:
		return strconv.FormatInt(int64(r.Coef), 10)
	case r.Coef == 1:
		return fmt.Sprintf("sqrt(%d)", r.Rad)
	}
	return fmt.Sprintf("%d*sqrt(%d)", r.Coef, r.Rad)
}

// ComplexPair is the reserved combination of a real and an imaginary part.
// No arithmetic between complex values is defined; the engine only ever
// produces the Complex atom placeholder. The type exists so collaborators
// have a stable shape to target once that arithmetic is specified.
type ComplexPair struct {
	// Real is the part whose square is positive.
	Real int32

	// Imag is the part whose square is negative.
	Imag int32
}

func (ComplexPair) isSym()  {}
func (ComplexPair) isExpr() {}

// Simplify is not defined for complex pairs; the value is returned as is.
func (c ComplexPair) Simplify() Sym { return c }

// Equal compares two complex pairs structurally.
func (c ComplexPair) Equal(other Sym) bool {
	o, ok := other.(ComplexPair)
	if !ok {
		return false
	}
	return c.Real == o.Real && c.Imag == o.Imag
}

// String renders the pair as "a+b𝑖", omitting zero parts and unit
// magnitudes.
func (c ComplexPair) String() string { return c.render("𝑖") }

// ASCII renders the pair with an ASCII "i".
func (c ComplexPair) ASCII() string { return c.render("i") }

func (c ComplexPair) render(unit string) string {
	var s string
	if c.Real != 0 {
		s = strconv.FormatInt(int64(c.Real), 10)
	}
	if c.Imag != 0 {
		switch {
		case c.Imag < 0:
			s += "-"
		case c.Real != 0:
			s += "+"
		}
		if mag := abs64(c.Imag); mag > 1 {
			s += strconv.FormatInt(mag, 10)
		}
		s += unit
	}
	return s
}
