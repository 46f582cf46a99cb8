package operations

import (
	"context"

	"github.com/GriffinCanCode/Algebra/internal/providers/algebra/common"
	"github.com/GriffinCanCode/Algebra/internal/sym"
	"github.com/GriffinCanCode/Algebra/internal/types"
)

// ArithmeticOps handles closed arithmetic over symbolic values
type ArithmeticOps struct {
	*common.AlgebraOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "algebra.add",
			Name:        "Add",
			Description: "Add two symbolic values with overflow mapping to huge",
			Parameters: []types.Parameter{
				{Name: "a", Type: "atom", Description: "First operand (number or sentinel name)", Required: true},
				{Name: "b", Type: "atom", Description: "Second operand", Required: true},
			},
			Returns: "sym",
		},
		{
			ID:          "algebra.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters: []types.Parameter{
				{Name: "a", Type: "atom", Description: "Minuend", Required: true},
				{Name: "b", Type: "atom", Description: "Subtrahend", Required: true},
			},
			Returns: "sym",
		},
		{
			ID:          "algebra.multiply",
			Name:        "Multiply",
			Description: "Multiply two symbolic values",
			Parameters: []types.Parameter{
				{Name: "a", Type: "atom", Description: "First factor", Required: true},
				{Name: "b", Type: "atom", Description: "Second factor", Required: true},
			},
			Returns: "sym",
		},
		{
			ID:          "algebra.divide",
			Name:        "Divide",
			Description: "Divide a by b; inexact quotients reduce to canonical fractions",
			Parameters: []types.Parameter{
				{Name: "a", Type: "atom", Description: "Dividend", Required: true},
				{Name: "b", Type: "atom", Description: "Divisor", Required: true},
			},
			Returns: "sym",
		},
		{
			ID:          "algebra.power",
			Name:        "Power",
			Description: "Raise base to an integer exponent by repeated multiplication",
			Parameters: []types.Parameter{
				{Name: "base", Type: "atom", Description: "Base", Required: true},
				{Name: "exponent", Type: "atom", Description: "Exponent", Required: true},
			},
			Returns: "sym",
		},
		{
			ID:          "algebra.sqrt",
			Name:        "Square Root",
			Description: "Square root; non-squares stay exact as canonical radicals",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Radicand", Required: true},
			},
			Returns: "sym",
		},
	}
}

// Add adds two symbolic values
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	lhs, rhs, fail := binaryAtoms(params)
	if fail != "" {
		return common.Failure(fail)
	}
	return common.Success(map[string]interface{}{"result": common.EncodeSym(sym.Add(lhs, rhs))})
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	lhs, rhs, fail := binaryAtoms(params)
	if fail != "" {
		return common.Failure(fail)
	}
	return common.Success(map[string]interface{}{"result": common.EncodeSym(sym.Sub(lhs, rhs))})
}

// Multiply multiplies two symbolic values
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	lhs, rhs, fail := binaryAtoms(params)
	if fail != "" {
		return common.Failure(fail)
	}
	return common.Success(map[string]interface{}{"result": common.EncodeSym(sym.Mul(lhs, rhs))})
}

// Divide divides a by b. Division by zero is not an error: the engine
// yields the undefined sentinel.
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	lhs, rhs, fail := binaryAtoms(params)
	if fail != "" {
		return common.Failure(fail)
	}
	return common.Success(map[string]interface{}{"result": common.EncodeSym(sym.Div(lhs, rhs))})
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, ok := common.GetAtom(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	exp, ok := common.GetAtom(params, "exponent")
	if !ok {
		return common.Failure("exponent parameter required")
	}
	return common.Success(map[string]interface{}{"result": common.EncodeSym(sym.Pow(base, exp))})
}

// Sqrt takes the square root of an integer. Negative radicands yield the
// complex sentinel.
func (a *ArithmeticOps) Sqrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}
	return common.Success(map[string]interface{}{"result": common.EncodeSym(sym.Sqrt(n))})
}

func binaryAtoms(params map[string]interface{}) (sym.Atom, sym.Atom, string) {
	lhs, ok := common.GetAtom(params, "a")
	if !ok {
		return sym.Atom{}, sym.Atom{}, "a parameter required"
	}
	rhs, ok := common.GetAtom(params, "b")
	if !ok {
		return sym.Atom{}, sym.Atom{}, "b parameter required"
	}
	return lhs, rhs, ""
}
