package sym

import (
	"fmt"
	"math"
	"strconv"
)

// Kind discriminates the Atom variants.
type Kind uint8

const (
	// KindNumber is an exact integer value.
	KindNumber Kind = iota

	// KindComplex is the placeholder for the square root of a negative.
	KindComplex

	// KindUndefined is the result of any number divided by zero.
	KindUndefined

	// KindHuge is a finite value whose magnitude overflowed the positive
	// side of the integer domain.
	KindHuge

	// KindNegHuge is the negative-side counterpart of KindHuge.
	KindNegHuge

	// KindEpsilon is a finite nonzero positive value too small to represent.
	KindEpsilon

	// KindNegEpsilon is the negative-side counterpart of KindEpsilon.
	KindNegEpsilon

	// KindUnknown marks a value known to be finite and defined but whose
	// class cannot be recovered from the sentinels it was computed from
	// (e.g. Huge divided by Epsilon-class operands).
	KindUnknown
)

// Atom is the smallest algebraic unit: an exact integer or a sentinel class
// marker. Only KindNumber carries data; every other kind is a class, not a
// specific value.
type Atom struct {
	Kind Kind

	// N is the integer value, meaningful only for KindNumber.
	N int32
}

// Num constructs a Number atom from an integer.
func Num(n int32) Atom { return Atom{Kind: KindNumber, N: n} }

// Sentinel atoms. These are classes, not values: two independently produced
// Epsilons are never equal, and Undefined equals nothing, itself included.
var (
	Complex    = Atom{Kind: KindComplex}
	Undefined  = Atom{Kind: KindUndefined}
	Huge       = Atom{Kind: KindHuge}
	NegHuge    = Atom{Kind: KindNegHuge}
	Epsilon    = Atom{Kind: KindEpsilon}
	NegEpsilon = Atom{Kind: KindNegEpsilon}
	Unknown    = Atom{Kind: KindUnknown}
)

func (Atom) isSym() {}

// IsNumber reports whether the atom is an exact integer.
func (a Atom) IsNumber() bool { return a.Kind == KindNumber }

// IsPositive reports the sign convention used throughout the engine:
// Number(n) is positive iff n >= 0; Huge and Epsilon are positive.
func (a Atom) IsPositive() bool {
	switch a.Kind {
	case KindNumber:
		return a.N >= 0
	case KindHuge, KindEpsilon:
		return true
	}
	return false
}

// IsNegative reports whether the atom is Number(n) with n < 0, NegHuge, or
// NegEpsilon.
func (a Atom) IsNegative() bool {
	switch a.Kind {
	case KindNumber:
		return a.N < 0
	case KindNegHuge, KindNegEpsilon:
		return true
	}
	return false
}

// IsHugeClass reports whether the atom is Huge or NegHuge.
func (a Atom) IsHugeClass() bool {
	return a.Kind == KindHuge || a.Kind == KindNegHuge
}

// IsEpsilonClass reports whether the atom is Epsilon or NegEpsilon.
func (a Atom) IsEpsilonClass() bool {
	return a.Kind == KindEpsilon || a.Kind == KindNegEpsilon
}

// Neg returns the sign-flipped atom. Signless kinds (Complex, Undefined,
// Unknown) are returned unchanged. Negating the minimum representable number
// overflows the domain and maps to Huge.
func (a Atom) Neg() Atom {
	switch a.Kind {
	case KindNumber:
		if a.N == math.MinInt32 {
			return Huge
		}
		return Num(-a.N)
	case KindHuge:
		return NegHuge
	case KindNegHuge:
		return Huge
	case KindEpsilon:
		return NegEpsilon
	case KindNegEpsilon:
		return Epsilon
	}
	return a
}

// Equal implements the engine's equality contract: only Numbers compare by
// value. Sentinels never equal anything, including another sentinel of the
// same kind, mirroring not-a-number semantics. Intended for simplified
// values; it does not simplify.
func (a Atom) Equal(other Sym) bool {
	b, ok := other.(Atom)
	if !ok {
		return false
	}
	return a.Kind == KindNumber && b.Kind == KindNumber && a.N == b.N
}

// String renders the atom per the display contract: decimal for numbers,
// one glyph per sentinel class.
func (a Atom) String() string {
	switch a.Kind {
	case KindNumber:
		return strconv.FormatInt(int64(a.N), 10)
	case KindComplex:
		return "𝑖"
	case KindUndefined:
		return "∅"
	case KindHuge:
		return "𝓗"
	case KindNegHuge:
		return "-𝓗"
	case KindEpsilon:
		return "ε"
	case KindNegEpsilon:
		return "-ε"
	case KindUnknown:
		return "?"
	}
	panic(fmt.Sprintf("sym: unhandled atom kind %d", a.Kind))
}

// ASCII renders the atom using the documented ASCII fallbacks for the
// sentinel glyphs: i, undef, H, -H, eps, -eps, ?.
func (a Atom) ASCII() string {
	switch a.Kind {
	case KindNumber:
		return strconv.FormatInt(int64(a.N), 10)
	case KindComplex:
		return "i"
	case KindUndefined:
		return "undef"
	case KindHuge:
		return "H"
	case KindNegHuge:
		return "-H"
	case KindEpsilon:
		return "eps"
	case KindNegEpsilon:
		return "-eps"
	case KindUnknown:
		return "?"
	}
	panic(fmt.Sprintf("sym: unhandled atom kind %d", a.Kind))
}
