package algebra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exec(t *testing.T, toolID string, params map[string]interface{}) map[string]interface{} {
	t.Helper()

	p := NewProvider()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "tool %s failed: %v", toolID, result.Error)
	return result.Data
}

func symResult(t *testing.T, data map[string]interface{}) map[string]interface{} {
	t.Helper()

	encoded, ok := data["result"].(map[string]interface{})
	require.True(t, ok, "result should be an encoded symbolic value")
	return encoded
}

func TestDefinition(t *testing.T) {
	def := NewProvider().Definition()

	assert.Equal(t, "algebra", def.ID)
	assert.Len(t, def.Tools, 14)

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
		seen[tool.ID] = true
	}
}

func TestArithmeticTools(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.add", map[string]interface{}{
			"a": float64(2), "b": float64(3),
		}))
		assert.Equal(t, "number", encoded["kind"])
		assert.EqualValues(t, 5, encoded["value"])
	})

	t.Run("add overflow", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.add", map[string]interface{}{
			"a": float64(2147483647), "b": float64(1),
		}))
		assert.Equal(t, "huge", encoded["kind"])
		assert.Equal(t, "𝓗", encoded["display"])
		assert.Equal(t, "H", encoded["ascii"])
	})

	t.Run("sentinel operand by name", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.add", map[string]interface{}{
			"a": "huge", "b": float64(5),
		}))
		assert.Equal(t, "huge", encoded["kind"])
	})

	t.Run("subtract", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.subtract", map[string]interface{}{
			"a": float64(3), "b": float64(10),
		}))
		assert.EqualValues(t, -7, encoded["value"])
	})

	t.Run("multiply", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.multiply", map[string]interface{}{
			"a": float64(-4), "b": float64(6),
		}))
		assert.EqualValues(t, -24, encoded["value"])
	})

	t.Run("divide exact", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.divide", map[string]interface{}{
			"a": float64(12), "b": float64(4),
		}))
		assert.EqualValues(t, 3, encoded["value"])
	})

	t.Run("divide to fraction", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.divide", map[string]interface{}{
			"a": float64(6), "b": float64(8),
		}))
		assert.Equal(t, "fraction", encoded["kind"])
		assert.Equal(t, "3/4", encoded["display"])
	})

	t.Run("divide by zero is a value, not an error", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.divide", map[string]interface{}{
			"a": float64(5), "b": float64(0),
		}))
		assert.Equal(t, "undefined", encoded["kind"])
	})

	t.Run("power", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.power", map[string]interface{}{
			"base": float64(2), "exponent": float64(10),
		}))
		assert.EqualValues(t, 1024, encoded["value"])
	})

	t.Run("sqrt to radical", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.sqrt", map[string]interface{}{
			"n": float64(8),
		}))
		assert.Equal(t, "radical", encoded["kind"])
		assert.EqualValues(t, 2, encoded["coef"])
		assert.EqualValues(t, 2, encoded["rad"])
		assert.Equal(t, "2√2", encoded["display"])
	})

	t.Run("sqrt of negative is complex", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.sqrt", map[string]interface{}{
			"n": float64(-9),
		}))
		assert.Equal(t, "complex", encoded["kind"])
	})
}

func TestReducerTools(t *testing.T) {
	t.Run("simplify fraction", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.simplify_fraction", map[string]interface{}{
			"num": float64(-9), "den": float64(12),
		}))
		assert.Equal(t, "fraction", encoded["kind"])
		assert.Equal(t, "-3/4", encoded["display"])
	})

	t.Run("simplify fraction with sentinel denominator", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.simplify_fraction", map[string]interface{}{
			"num": float64(3), "den": "huge",
		}))
		assert.Equal(t, "epsilon", encoded["kind"])
	})

	t.Run("simplify radical", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.simplify_radical", map[string]interface{}{
			"coef": float64(2), "rad": float64(18),
		}))
		assert.Equal(t, "radical", encoded["kind"])
		assert.Equal(t, "6√2", encoded["display"])
	})
}

func TestFactoringTools(t *testing.T) {
	t.Run("factors", func(t *testing.T) {
		data := exec(t, "algebra.factors", map[string]interface{}{"n": float64(12)})
		assert.NotNil(t, data["factors"])
	})

	t.Run("common_factors", func(t *testing.T) {
		data := exec(t, "algebra.common_factors", map[string]interface{}{
			"numbers": []interface{}{float64(8), float64(12)},
		})
		assert.NotNil(t, data["factors"])
	})

	t.Run("gcf", func(t *testing.T) {
		data := exec(t, "algebra.gcf", map[string]interface{}{
			"numbers": []interface{}{float64(8), float64(12)},
		})
		assert.EqualValues(t, 4, data["result"])
	})

	t.Run("lcm", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.lcm", map[string]interface{}{
			"numbers": []interface{}{float64(4), float64(5)},
		}))
		assert.EqualValues(t, 20, encoded["value"])
	})

	t.Run("lcm overflow degrades to huge", func(t *testing.T) {
		encoded := symResult(t, exec(t, "algebra.lcm", map[string]interface{}{
			"numbers": []interface{}{float64(2147483647), float64(2)},
		}))
		assert.Equal(t, "huge", encoded["kind"])
	})

	t.Run("is_prime", func(t *testing.T) {
		data := exec(t, "algebra.is_prime", map[string]interface{}{"n": float64(7)})
		assert.Equal(t, true, data["prime"])
		assert.Equal(t, false, data["composite"])
	})

	t.Run("parity", func(t *testing.T) {
		data := exec(t, "algebra.parity", map[string]interface{}{"n": float64(-3)})
		assert.Equal(t, "odd", data["parity"])
	})
}

func TestExecuteFailures(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	t.Run("unknown tool", func(t *testing.T) {
		result, err := p.Execute(ctx, "algebra.nope", nil, nil)
		assert.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("missing parameter", func(t *testing.T) {
		result, err := p.Execute(ctx, "algebra.add", map[string]interface{}{"a": float64(1)}, nil)
		assert.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("fractional input rejected", func(t *testing.T) {
		result, err := p.Execute(ctx, "algebra.add", map[string]interface{}{
			"a": 1.5, "b": float64(2),
		}, nil)
		assert.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("unknown sentinel name rejected", func(t *testing.T) {
		result, err := p.Execute(ctx, "algebra.add", map[string]interface{}{
			"a": "infinity", "b": float64(2),
		}, nil)
		assert.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("empty numbers array", func(t *testing.T) {
		result, err := p.Execute(ctx, "algebra.gcf", map[string]interface{}{
			"numbers": []interface{}{},
		}, nil)
		assert.NoError(t, err)
		assert.False(t, result.Success)
	})
}
