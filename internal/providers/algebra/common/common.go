package common

import (
	"math"

	"github.com/GriffinCanCode/Algebra/internal/sym"
	"github.com/GriffinCanCode/Algebra/internal/types"
)

// AlgebraOps provides common algebra helpers
type AlgebraOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetInt extracts a bounded integer from params. JSON numbers arrive as
// float64; fractional or out-of-range values are rejected rather than
// truncated.
func GetInt(params map[string]interface{}, key string) (int32, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return coerceInt(val)
}

// GetInts extracts an array of bounded integers with type coercion
func GetInts(params map[string]interface{}, key string) ([]int32, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	ints := make([]int32, 0, len(arr))
	for _, v := range arr {
		n, ok := coerceInt(v)
		if !ok {
			return nil, false
		}
		ints = append(ints, n)
	}
	return ints, true
}

// GetAtom extracts a symbolic atom from params. Plain JSON numbers become
// Number atoms; sentinel values are addressed by name ("huge", "epsilon",
// "undefined", ...).
func GetAtom(params map[string]interface{}, key string) (sym.Atom, bool) {
	val, ok := params[key]
	if !ok {
		return sym.Atom{}, false
	}

	if name, ok := val.(string); ok {
		return AtomByName(name)
	}

	n, ok := coerceInt(val)
	if !ok {
		return sym.Atom{}, false
	}
	return sym.Num(n), true
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

func coerceInt(val interface{}) (int32, bool) {
	switch v := val.(type) {
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int32(v), true
	case int:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int32(v), true
	case int64:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int32(v), true
	case int32:
		return v, true
	case float32:
		return coerceInt(float64(v))
	default:
		return 0, false
	}
}

// AtomByName resolves a sentinel name to its atom
func AtomByName(name string) (sym.Atom, bool) {
	switch name {
	case "complex":
		return sym.Complex, true
	case "undefined":
		return sym.Undefined, true
	case "huge":
		return sym.Huge, true
	case "negative_huge":
		return sym.NegHuge, true
	case "epsilon":
		return sym.Epsilon, true
	case "negative_epsilon":
		return sym.NegEpsilon, true
	case "unknown":
		return sym.Unknown, true
	}
	return sym.Atom{}, false
}

// AtomName returns the wire name of an atom's kind
func AtomName(a sym.Atom) string {
	switch a.Kind {
	case sym.KindNumber:
		return "number"
	case sym.KindComplex:
		return "complex"
	case sym.KindUndefined:
		return "undefined"
	case sym.KindHuge:
		return "huge"
	case sym.KindNegHuge:
		return "negative_huge"
	case sym.KindEpsilon:
		return "epsilon"
	case sym.KindNegEpsilon:
		return "negative_epsilon"
	case sym.KindUnknown:
		return "unknown"
	}
	panic("unhandled atom kind")
}

// EncodeSym converts a symbolic value to its JSON representation. Every
// encoding carries the kind, the glyph rendering, and the ASCII fallback;
// structural kinds add their parts.
func EncodeSym(s sym.Sym) map[string]interface{} {
	out := map[string]interface{}{
		"display": s.String(),
		"ascii":   s.ASCII(),
	}

	switch v := s.(type) {
	case sym.Atom:
		out["kind"] = AtomName(v)
		if v.Kind == sym.KindNumber {
			out["value"] = v.N
		}
	case sym.Fraction:
		out["kind"] = "fraction"
		out["num"] = EncodeSym(v.Num)
		out["den"] = EncodeSym(v.Den)
	case sym.Radical:
		out["kind"] = "radical"
		out["coef"] = v.Coef
		out["rad"] = v.Rad
	case sym.ComplexPair:
		out["kind"] = "complex_pair"
		out["real"] = v.Real
		out["imag"] = v.Imag
	default:
		out["kind"] = "unknown"
	}

	return out
}
