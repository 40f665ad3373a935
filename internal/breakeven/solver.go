package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/transform"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver searches one input for the value at which buying breaks even
// within a target year
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Optimize bisects the requested input between its bounds. The bracket
// always keeps one end that reaches break-even by TargetYear and one that
// does not; the reaching end is returned.
func (s *Solver) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}
	if _, ok := defaultBounds[req.Target]; !ok {
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization target: %s", req.Target),
		}
	}
	if req.TargetYear < 1 || req.TargetYear > req.Inputs.TimeHorizon {
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("target year %d must be between 1 and the time horizon (%d)", req.TargetYear, req.Inputs.TimeHorizon),
		}
	}

	if req.MaxIterations <= 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.MaxIterations <= 0 {
		req.MaxIterations = DefaultSolverOptions().MaxIterations
	}
	if !req.Tolerance.IsPositive() {
		req.Tolerance = s.Options.Tolerance
	}
	if !req.Tolerance.IsPositive() {
		req.Tolerance = defaultBounds[req.Target].tolerance
	}

	base := s.CalcEngine.CalculateRentVsBuy(req.Inputs)
	result := &OptimizationResult{
		Request:           req,
		BaseValue:         currentValue(req.Inputs, req.Target),
		BaseBreakEvenYear: base.BreakEvenYear,
	}

	lo, hi := req.Constraints.Range(req.Target)
	loProj, loOK, err := s.evaluate(ctx, req, lo)
	if err != nil {
		return nil, err
	}
	hiProj, hiOK, err := s.evaluate(ctx, req, hi)
	if err != nil {
		return nil, err
	}

	if loOK == hiOK {
		if loOK {
			result.ConvergenceInfo = fmt.Sprintf("break-even by year %d at every value in range", req.TargetYear)
		} else {
			result.ConvergenceInfo = fmt.Sprintf("no value in range breaks even by year %d", req.TargetYear)
		}
		return result, nil
	}

	// reach is the end that breaks even in time, miss the one that does not
	reach, miss, reachProj := hi, lo, hiProj
	result.Direction = AtLeast
	if loOK {
		reach, miss, reachProj = lo, hi, loProj
		result.Direction = AtMost
	}

	for reach.Sub(miss).Abs().GreaterThan(req.Tolerance) && result.Iterations < req.MaxIterations {
		result.Iterations++

		mid := reach.Add(miss).Div(two)
		proj, ok, err := s.evaluate(ctx, req, mid)
		if err != nil {
			return nil, err
		}
		if ok {
			reach, reachProj = mid, proj
		} else {
			miss = mid
		}
	}

	result.Success = reach.Sub(miss).Abs().LessThanOrEqual(req.Tolerance)
	if result.Success {
		result.ConvergenceInfo = fmt.Sprintf("Binary search converged within %s", req.Tolerance.String())
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	}

	result.OptimalValue = &reach
	result.ChangeNeeded = reach.Sub(result.BaseValue)
	result.Projection = reachProj
	result.BreakEvenYear = reachProj.BreakEvenYear
	return result, nil
}

// evaluate runs the projection with the target input set to value and
// reports whether break-even happens by the target year
func (s *Solver) evaluate(ctx context.Context, req OptimizationRequest, value decimal.Decimal) (*domain.ProjectionResult, bool, error) {
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	default:
	}

	modified, err := transform.ApplyTransforms(req.Inputs, []transform.InputTransform{targetTransform(req.Target, value)})
	if err != nil {
		return nil, false, &BreakEvenError{
			Operation: "optimize_" + string(req.Target),
			Message:   "failed to apply transform",
			Cause:     err,
		}
	}

	proj := s.CalcEngine.CalculateRentVsBuy(modified)
	reached := proj.BreakEvenYear != nil && *proj.BreakEvenYear <= req.TargetYear
	s.CalcEngine.Logger.Debugf("break-even search %s=%s: reached by year %d: %t", req.Target, value.StringFixed(2), req.TargetYear, reached)
	return &proj, reached, nil
}

func targetTransform(target OptimizationTarget, value decimal.Decimal) transform.InputTransform {
	switch target {
	case OptimizeHomePrice:
		return &transform.SetHomePrice{Price: value}
	case OptimizeDownPayment:
		return &transform.SetDownPayment{Percent: value}
	default:
		return &transform.SetRent{Monthly: value}
	}
}

func currentValue(in domain.ProjectionInputs, target OptimizationTarget) decimal.Decimal {
	switch target {
	case OptimizeHomePrice:
		return in.HomePrice
	case OptimizeDownPayment:
		return in.DownPaymentPercent
	default:
		return in.MonthlyRent
	}
}
