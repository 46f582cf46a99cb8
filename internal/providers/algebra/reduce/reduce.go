package reduce

import (
	"context"

	"github.com/GriffinCanCode/Algebra/internal/providers/algebra/common"
	"github.com/GriffinCanCode/Algebra/internal/sym"
	"github.com/GriffinCanCode/Algebra/internal/types"
)

// ReduceOps handles canonicalization of compound expressions
type ReduceOps struct {
	*common.AlgebraOps
}

// GetTools returns reducer tool definitions
func (r *ReduceOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "algebra.simplify_fraction",
			Name:        "Simplify Fraction",
			Description: "Reduce a fraction to lowest terms or collapse it to an atom",
			Parameters: []types.Parameter{
				{Name: "num", Type: "atom", Description: "Numerator (number or sentinel name)", Required: true},
				{Name: "den", Type: "atom", Description: "Denominator", Required: true},
			},
			Returns: "sym",
		},
		{
			ID:          "algebra.simplify_radical",
			Name:        "Simplify Radical",
			Description: "Extract the greatest perfect square from a radical",
			Parameters: []types.Parameter{
				{Name: "coef", Type: "number", Description: "Coefficient", Required: true},
				{Name: "rad", Type: "number", Description: "Radicand", Required: true},
			},
			Returns: "sym",
		},
	}
}

// SimplifyFraction reduces a fraction per the sentinel decision table
func (r *ReduceOps) SimplifyFraction(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	num, ok := common.GetAtom(params, "num")
	if !ok {
		return common.Failure("num parameter required")
	}
	den, ok := common.GetAtom(params, "den")
	if !ok {
		return common.Failure("den parameter required")
	}

	result := sym.FractionOf(num, den).Simplify()
	return common.Success(map[string]interface{}{"result": common.EncodeSym(result)})
}

// SimplifyRadical canonicalizes a radical expression
func (r *ReduceOps) SimplifyRadical(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	coef, ok := common.GetInt(params, "coef")
	if !ok {
		return common.Failure("coef parameter required")
	}
	rad, ok := common.GetInt(params, "rad")
	if !ok {
		return common.Failure("rad parameter required")
	}

	result := sym.NewRadical(coef, rad).Simplify()
	return common.Success(map[string]interface{}{"result": common.EncodeSym(result)})
}
