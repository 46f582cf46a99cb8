package factoring

import (
	"context"

	"github.com/GriffinCanCode/Algebra/internal/factor"
	"github.com/GriffinCanCode/Algebra/internal/providers/algebra/common"
	"github.com/GriffinCanCode/Algebra/internal/sym"
	"github.com/GriffinCanCode/Algebra/internal/types"
)

// FactoringOps handles factor enumeration and divisor queries
type FactoringOps struct {
	*common.AlgebraOps
}

// GetTools returns factoring tool definitions
func (f *FactoringOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "algebra.factors",
			Name:        "Factors",
			Description: "Enumerate the factor pairs of a number",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Number to factor", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "algebra.common_factors",
			Name:        "Common Factors",
			Description: "Enumerate factors shared across a set of numbers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to factor together", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "algebra.gcf",
			Name:        "Greatest Common Factor",
			Description: "Greatest common factor of a set of numbers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "algebra.lcm",
			Name:        "Least Common Multiple",
			Description: "Least common multiple; results beyond the domain degrade to huge",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers", Required: true},
			},
			Returns: "sym",
		},
		{
			ID:          "algebra.is_prime",
			Name:        "Primality",
			Description: "Whether the magnitude of a number is prime",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Number", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "algebra.parity",
			Name:        "Parity",
			Description: "Whether a number is even or odd",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Number", Required: true},
			},
			Returns: "string",
		},
	}
}

// Factors enumerates the factor pairs of n
func (f *FactoringOps) Factors(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}

	return common.Success(map[string]interface{}{"factors": factor.Factors(n)})
}

// CommonFactors enumerates factors shared across a set of numbers
func (f *FactoringOps) CommonFactors(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ns, ok := common.GetInts(params, "numbers")
	if !ok || len(ns) == 0 {
		return common.Failure("numbers array required")
	}

	return common.Success(map[string]interface{}{"factors": factor.CommonFactors(ns)})
}

// GCF computes the greatest common factor
func (f *FactoringOps) GCF(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ns, ok := common.GetInts(params, "numbers")
	if !ok || len(ns) == 0 {
		return common.Failure("numbers array required")
	}

	return common.Success(map[string]interface{}{"result": factor.GCF(ns)})
}

// LCM computes the least common multiple. An overflowing multiple is not an
// error: the result is the huge sentinel.
func (f *FactoringOps) LCM(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ns, ok := common.GetInts(params, "numbers")
	if !ok || len(ns) == 0 {
		return common.Failure("numbers array required")
	}

	lcm, ok := factor.LCM(ns)
	if !ok {
		return common.Success(map[string]interface{}{"result": common.EncodeSym(sym.Huge)})
	}
	return common.Success(map[string]interface{}{"result": common.EncodeSym(sym.Num(lcm))})
}

// IsPrime reports primality of the magnitude of n
func (f *FactoringOps) IsPrime(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}

	return common.Success(map[string]interface{}{
		"prime":     factor.IsPrime(n),
		"composite": factor.IsComposite(n),
	})
}

// Parity reports whether n is even or odd
func (f *FactoringOps) Parity(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}

	parity := "even"
	if factor.IsOdd(n) {
		parity = "odd"
	}
	return common.Success(map[string]interface{}{"parity": parity})
}
