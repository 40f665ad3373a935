package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// OptimizeMultiDimensional runs the solver once per target and collects
// the boundaries that were found
func (s *Solver) OptimizeMultiDimensional(
	ctx context.Context,
	inputs domain.ProjectionInputs,
	targetYear int,
	targets []OptimizationTarget,
) (*MultiDimensionalResult, error) {

	if len(targets) == 0 {
		targets = Targets
	}

	var results []OptimizationResult
	var lastErr error

	for _, target := range targets {
		req := OptimizationRequest{
			Inputs:        inputs,
			Target:        target,
			TargetYear:    targetYear,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		}

		result, err := s.Optimize(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			s.CalcEngine.Logger.Warnf("break-even search on %s failed: %v", target, err)
			continue
		}

		if result.Success {
			results = append(results, *result)
		}
	}

	if len(results) == 0 {
		return nil, &BreakEvenError{
			Operation: "optimize_multi_dimensional",
			Message:   fmt.Sprintf("no break-even boundary found by year %d", targetYear),
			Cause:     lastErr,
		}
	}

	mdResult := &MultiDimensionalResult{
		Results: results,
	}
	mdResult.Recommendations = generateRecommendations(mdResult)

	return mdResult, nil
}

// generateRecommendations phrases each boundary as the change a buyer
// would need to make
func generateRecommendations(result *MultiDimensionalResult) []string {
	var recommendations []string

	for _, res := range result.Results {
		if res.OptimalValue == nil {
			continue
		}
		bound := "at least"
		if res.Direction == AtMost {
			bound = "at most"
		}
		var rec string
		switch res.Request.Target {
		case OptimizeHomePrice:
			rec = fmt.Sprintf("A home price of %s $%s breaks even by year %d (currently $%s)",
				bound, res.OptimalValue.StringFixed(0), res.Request.TargetYear, res.BaseValue.StringFixed(0))
		case OptimizeDownPayment:
			rec = fmt.Sprintf("A down payment of %s %s%% breaks even by year %d (currently %s%%)",
				bound, res.OptimalValue.StringFixed(2), res.Request.TargetYear, res.BaseValue.StringFixed(2))
		case OptimizeRent:
			rec = fmt.Sprintf("Buying breaks even by year %d when comparable rent is %s $%s/month (currently $%s)",
				res.Request.TargetYear, bound, res.OptimalValue.StringFixed(0), res.BaseValue.StringFixed(0))
		}
		if rec != "" {
			recommendations = append(recommendations, rec)
		}
	}

	return recommendations
}
