package transform

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// InputTransform defines the interface for all projection input transformations.
// Transforms are composable operations that modify inputs in predictable ways,
// enabling scenario comparison, break-even analysis and the interactive explorer.
type InputTransform interface {
	// Apply transforms base inputs and returns a new modified copy.
	// The base value is never modified.
	Apply(base domain.ProjectionInputs) (domain.ProjectionInputs, error)

	// Name returns a short identifier for this transform (e.g., "set_down_payment").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks if the transform parameters are valid without applying it.
	Validate(base domain.ProjectionInputs) error
}

// ApplyTransforms applies a sequence of transforms to base inputs.
// Transforms are applied in order, with each transform receiving the output of the previous one.
func ApplyTransforms(base domain.ProjectionInputs, transforms []InputTransform) (domain.ProjectionInputs, error) {
	current := base.Clone()

	for i, transform := range transforms {
		if transform == nil {
			return domain.ProjectionInputs{}, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return domain.ProjectionInputs{}, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return domain.ProjectionInputs{}, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
