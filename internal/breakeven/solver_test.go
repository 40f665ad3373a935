package breakeven

import (
	"context"
	"errors"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// zeroDownInputs never breaks even in year 1 at the default rent: without a
// down payment the first year's equity is only appreciation and principal.
func zeroDownInputs() domain.ProjectionInputs {
	in := domain.DefaultProjectionInputs()
	in.DownPaymentPercent = decimal.Zero
	return in
}

func reachedBy(t *testing.T, in domain.ProjectionInputs, year int) bool {
	t.Helper()
	r := calculation.CalculateRentVsBuy(in)
	return r.BreakEvenYear != nil && *r.BreakEvenYear <= year
}

func TestNewDefaultSolver(t *testing.T) {
	calcEngine := calculation.NewCalculationEngine()

	solver := NewDefaultSolver(calcEngine)

	if solver.CalcEngine != calcEngine {
		t.Error("Expected CalcEngine to match input")
	}
	if solver.Options.MaxIterations != DefaultSolverOptions().MaxIterations {
		t.Error("Expected default max iterations to be applied")
	}
}

func TestSolver_Optimize_Rent(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	in := zeroDownInputs()

	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Inputs:     in,
		Target:     OptimizeRent,
		TargetYear: 5,
	})
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected convergence, got %q", result.ConvergenceInfo)
	}
	if result.Direction != AtLeast {
		t.Errorf("Expected higher rent to favour buying, got direction %s", result.Direction)
	}
	if result.OptimalValue == nil {
		t.Fatal("Expected a boundary value")
	}
	if result.BreakEvenYear == nil || *result.BreakEvenYear > 5 {
		t.Errorf("Expected break-even by year 5 at the boundary, got %v", result.BreakEvenYear)
	}
	if !result.BaseValue.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("Expected base rent 2000, got %s", result.BaseValue)
	}
	if !result.ChangeNeeded.Equal(result.OptimalValue.Sub(result.BaseValue)) {
		t.Error("ChangeNeeded must be the distance from the current rent")
	}

	// Renting cost is monotonic in rent, so just below the bracket misses.
	below := in.Clone()
	below.MonthlyRent = result.OptimalValue.Sub(decimal.NewFromInt(2))
	if reachedBy(t, below, 5) {
		t.Errorf("Rent %s should not break even by year 5", below.MonthlyRent)
	}
	at := in.Clone()
	at.MonthlyRent = *result.OptimalValue
	if !reachedBy(t, at, 5) {
		t.Errorf("Rent %s should break even by year 5", at.MonthlyRent)
	}
}

func TestSolver_Optimize_DownPayment(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Inputs:     zeroDownInputs(),
		Target:     OptimizeDownPayment,
		TargetYear: 1,
	})
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if !result.Success || result.OptimalValue == nil {
		t.Fatalf("Expected a boundary, got %q", result.ConvergenceInfo)
	}
	if result.Direction != AtLeast {
		t.Errorf("Expected a larger down payment to break even sooner, got %s", result.Direction)
	}
	if result.OptimalValue.LessThanOrEqual(decimal.Zero) || result.OptimalValue.GreaterThan(decimal.NewFromInt(100)) {
		t.Errorf("Boundary %s outside the searched range", result.OptimalValue)
	}
	if result.BreakEvenYear == nil || *result.BreakEvenYear != 1 {
		t.Errorf("Expected break-even in year 1 at the boundary, got %v", result.BreakEvenYear)
	}
}

func TestSolver_Optimize_HomePrice(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Inputs:     zeroDownInputs(),
		Target:     OptimizeHomePrice,
		TargetYear: 1,
	})
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if !result.Success || result.OptimalValue == nil {
		t.Fatalf("Expected a boundary, got %q", result.ConvergenceInfo)
	}
	if result.Direction != AtMost {
		t.Errorf("Expected cheaper homes to break even sooner, got %s", result.Direction)
	}
	if result.Projection == nil || len(result.Projection.Results) != 10 {
		t.Error("Expected the boundary projection over the full horizon")
	}
}

func TestSolver_Optimize_NoBoundary(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	// With 20% down the first year's equity dwarfs its costs at any rent.
	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Inputs:     domain.DefaultProjectionInputs(),
		Target:     OptimizeRent,
		TargetYear: 1,
	})
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if result.Success {
		t.Error("Expected no boundary when every rent breaks even")
	}
	if result.OptimalValue != nil {
		t.Error("Expected no optimal value")
	}
	if result.ConvergenceInfo != "break-even by year 1 at every value in range" {
		t.Errorf("Unexpected convergence info %q", result.ConvergenceInfo)
	}
}

func TestSolver_Optimize_MaxIterations(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	result, err := solver.Optimize(context.Background(), OptimizationRequest{
		Inputs:        zeroDownInputs(),
		Target:        OptimizeRent,
		TargetYear:    5,
		MaxIterations: 3,
		Tolerance:     decimal.RequireFromString("0.0001"),
	})
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if result.Success {
		t.Error("Expected no convergence in 3 iterations")
	}
	if result.Iterations != 3 {
		t.Errorf("Expected 3 iterations, got %d", result.Iterations)
	}
	if result.ConvergenceInfo != "Max iterations (3) reached" {
		t.Errorf("Unexpected convergence info %q", result.ConvergenceInfo)
	}
	if result.OptimalValue == nil {
		t.Error("Expected the best bracket end so far")
	}
}

func TestSolver_Optimize_InvalidRequests(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	lo, hi := decimal.NewFromInt(500), decimal.NewFromInt(100)

	tests := []struct {
		name string
		req  OptimizationRequest
	}{
		{"unknown target", OptimizationRequest{Inputs: zeroDownInputs(), Target: "tsp_rate", TargetYear: 3}},
		{"target year zero", OptimizationRequest{Inputs: zeroDownInputs(), Target: OptimizeRent}},
		{"target year past horizon", OptimizationRequest{Inputs: zeroDownInputs(), Target: OptimizeRent, TargetYear: 11}},
		{"inverted range", OptimizationRequest{Inputs: zeroDownInputs(), Target: OptimizeRent, TargetYear: 3,
			Constraints: Constraints{MinValue: &lo, MaxValue: &hi}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := solver.Optimize(context.Background(), tt.req)
			var beErr *BreakEvenError
			if !errors.As(err, &beErr) {
				t.Fatalf("Expected BreakEvenError, got %v", err)
			}
		})
	}
}

func TestSolver_Optimize_TransformFailure(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	zero, hi := decimal.Zero, decimal.NewFromInt(5000)

	_, err := solver.Optimize(context.Background(), OptimizationRequest{
		Inputs:      zeroDownInputs(),
		Target:      OptimizeRent,
		TargetYear:  3,
		Constraints: Constraints{MinValue: &zero, MaxValue: &hi},
	})
	var beErr *BreakEvenError
	if !errors.As(err, &beErr) {
		t.Fatalf("Expected BreakEvenError, got %v", err)
	}
	if beErr.Cause == nil {
		t.Error("Expected the transform error as cause")
	}
}

func TestSolver_Optimize_ContextCancelled(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Optimize(ctx, OptimizationRequest{
		Inputs:     zeroDownInputs(),
		Target:     OptimizeRent,
		TargetYear: 5,
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSolver_OptimizeMultiDimensional(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculationEngine())

	result, err := solver.OptimizeMultiDimensional(context.Background(), zeroDownInputs(), 1, nil)
	if err != nil {
		t.Fatalf("OptimizeMultiDimensional failed: %v", err)
	}
	if len(result.Results) == 0 {
		t.Fatal("Expected at least one boundary")
	}
	if len(result.Recommendations) != len(result.Results) {
		t.Errorf("Expected one recommendation per boundary, got %d for %d", len(result.Recommendations), len(result.Results))
	}

	_, err = solver.OptimizeMultiDimensional(context.Background(), domain.DefaultProjectionInputs(), 1, []OptimizationTarget{OptimizeRent})
	if err == nil {
		t.Error("Expected an error when no target has a boundary")
	}
}
