package algebra

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/Algebra/internal/providers/algebra/common"
	"github.com/GriffinCanCode/Algebra/internal/providers/algebra/factoring"
	"github.com/GriffinCanCode/Algebra/internal/providers/algebra/operations"
	"github.com/GriffinCanCode/Algebra/internal/providers/algebra/reduce"
	"github.com/GriffinCanCode/Algebra/internal/types"
)

// Provider implements symbolic algebra operations
type Provider struct {
	arithmetic *operations.ArithmeticOps
	reducers   *reduce.ReduceOps
	factoring  *factoring.FactoringOps
}

// NewProvider creates a modular algebra provider
func NewProvider() *Provider {
	ops := &common.AlgebraOps{}

	return &Provider{
		arithmetic: &operations.ArithmeticOps{AlgebraOps: ops},
		reducers:   &reduce.ReduceOps{AlgebraOps: ops},
		factoring:  &factoring.FactoringOps{AlgebraOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.arithmetic.GetTools()...)
	tools = append(tools, p.reducers.GetTools()...)
	tools = append(tools, p.factoring.GetTools()...)

	return types.Service{
		ID:          "algebra",
		Name:        "Algebra Service",
		Description: "Exact symbolic arithmetic over a bounded integer domain",
		Category:    types.CategoryAlgebra,
		Capabilities: []string{
			"arithmetic",
			"fractions",
			"radicals",
			"factoring",
			"primality",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic operations
	case "algebra.add":
		return p.arithmetic.Add(ctx, params, appCtx)
	case "algebra.subtract":
		return p.arithmetic.Subtract(ctx, params, appCtx)
	case "algebra.multiply":
		return p.arithmetic.Multiply(ctx, params, appCtx)
	case "algebra.divide":
		return p.arithmetic.Divide(ctx, params, appCtx)
	case "algebra.power":
		return p.arithmetic.Power(ctx, params, appCtx)
	case "algebra.sqrt":
		return p.arithmetic.Sqrt(ctx, params, appCtx)

	// Reducers
	case "algebra.simplify_fraction":
		return p.reducers.SimplifyFraction(ctx, params, appCtx)
	case "algebra.simplify_radical":
		return p.reducers.SimplifyRadical(ctx, params, appCtx)

	// Factoring
	case "algebra.factors":
		return p.factoring.Factors(ctx, params, appCtx)
	case "algebra.common_factors":
		return p.factoring.CommonFactors(ctx, params, appCtx)
	case "algebra.gcf":
		return p.factoring.GCF(ctx, params, appCtx)
	case "algebra.lcm":
		return p.factoring.LCM(ctx, params, appCtx)
	case "algebra.is_prime":
		return p.factoring.IsPrime(ctx, params, appCtx)
	case "algebra.parity":
		return p.factoring.Parity(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
