package breakeven

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines which input the solver moves
type OptimizationTarget string

const (
	OptimizeHomePrice   OptimizationTarget = "price"
	OptimizeDownPayment OptimizationTarget = "down"
	OptimizeRent        OptimizationTarget = "rent"
	OptimizeAll         OptimizationTarget = "all"
)

// Targets lists the single-input targets in the order OptimizeAll runs them
var Targets = []OptimizationTarget{OptimizeHomePrice, OptimizeDownPayment, OptimizeRent}

// ParseTarget accepts the short names and a few long aliases
func ParseTarget(s string) (OptimizationTarget, error) {
	switch s {
	case "price", "home_price":
		return OptimizeHomePrice, nil
	case "down", "down_payment":
		return OptimizeDownPayment, nil
	case "rent", "monthly_rent":
		return OptimizeRent, nil
	case "all":
		return OptimizeAll, nil
	}
	return "", &BreakEvenError{
		Operation: "parse_target",
		Message:   fmt.Sprintf("unknown target %q (expected price, down, rent or all)", s),
	}
}

// Direction says which side of the boundary reaches break-even in time
type Direction string

const (
	AtLeast Direction = "at_least" // values at or above the boundary break even
	AtMost  Direction = "at_most"  // values at or below the boundary break even
)

// Constraints bound the search range. Nil bounds fall back to the target's defaults.
type Constraints struct {
	MinValue *decimal.Decimal `json:"min_value,omitempty"`
	MaxValue *decimal.Decimal `json:"max_value,omitempty"`
}

type bounds struct {
	min, max, tolerance decimal.Decimal
}

var defaultBounds = map[OptimizationTarget]bounds{
	OptimizeHomePrice:   {decimal.NewFromInt(50000), decimal.NewFromInt(3000000), decimal.NewFromInt(100)},
	OptimizeDownPayment: {decimal.Zero, decimal.NewFromInt(100), decimal.RequireFromString("0.01")},
	OptimizeRent:        {decimal.NewFromInt(100), decimal.NewFromInt(20000), decimal.NewFromInt(1)},
}

// Range resolves the search interval for a target
func (c Constraints) Range(target OptimizationTarget) (lo, hi decimal.Decimal) {
	b := defaultBounds[target]
	lo, hi = b.min, b.max
	if c.MinValue != nil {
		lo = *c.MinValue
	}
	if c.MaxValue != nil {
		hi = *c.MaxValue
	}
	return lo, hi
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate() error {
	if c.MinValue != nil && c.MaxValue != nil && !c.MinValue.LessThan(*c.MaxValue) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_value must be less than max_value",
		}
	}
	if c.MinValue != nil && c.MinValue.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_value cannot be negative",
		}
	}
	return nil
}

// OptimizationRequest defines the parameters for a solver run
type OptimizationRequest struct {
	Inputs        domain.ProjectionInputs `json:"-"`
	Target        OptimizationTarget      `json:"target"`
	TargetYear    int                     `json:"target_year"` // break-even must happen in or before this year
	Constraints   Constraints             `json:"constraints"`
	MaxIterations int                     `json:"max_iterations"`
	Tolerance     decimal.Decimal         `json:"tolerance"` // stop when the bracket is this narrow
}

// OptimizationResult contains the results of a solver run
type OptimizationResult struct {
	Request         OptimizationRequest `json:"request"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergence_info"`

	// Boundary found; nil when the whole range falls on one side
	OptimalValue *decimal.Decimal `json:"optimal_value,omitempty"`
	Direction    Direction        `json:"direction,omitempty"`
	BaseValue    decimal.Decimal  `json:"base_value"`
	ChangeNeeded decimal.Decimal  `json:"change_needed"`

	// Projection at the boundary value
	Projection    *domain.ProjectionResult `json:"projection,omitempty"`
	BreakEvenYear *int                     `json:"break_even_year"`

	BaseBreakEvenYear *int `json:"base_break_even_year"`
}

// MultiDimensionalResult contains one result per target
type MultiDimensionalResult struct {
	Results         []OptimizationResult `json:"results"`
	Recommendations []string             `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Zero uses each target's own tolerance
	MaxIterations int             // Maximum bisection steps
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 60,
	}
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
