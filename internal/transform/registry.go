package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands
// and the transforms list in scenario files.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (InputTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_down_payment", createSetDownPayment)
	registry.Register("adjust_interest_rate", createAdjustInterestRate)
	registry.Register("set_home_price", createSetHomePrice)
	registry.Register("set_time_horizon", createSetTimeHorizon)
	registry.Register("set_mortgage_term", createSetMortgageTerm)
	registry.Register("set_rent", createSetRent)
	registry.Register("set_appreciation", createSetAppreciation)
	registry.Register("set_location", createSetLocation)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (InputTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_down_payment:percent=10"
func (r *TransformRegistry) ParseTransformSpec(spec string) (InputTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// ParseAll parses a list of transform specs in order.
func (r *TransformRegistry) ParseAll(specs []string) ([]InputTransform, error) {
	transforms := make([]InputTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

func decimalParam(params map[string]string, transform, key string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func intParam(params map[string]string, transform, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

// Factory functions for each transform

func createSetDownPayment(params map[string]string) (InputTransform, error) {
	percent, err := decimalParam(params, "set_down_payment", "percent")
	if err != nil {
		return nil, err
	}
	return &SetDownPayment{Percent: percent}, nil
}

func createAdjustInterestRate(params map[string]string) (InputTransform, error) {
	delta, err := decimalParam(params, "adjust_interest_rate", "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustInterestRate{Delta: delta}, nil
}

func createSetHomePrice(params map[string]string) (InputTransform, error) {
	price, err := decimalParam(params, "set_home_price", "price")
	if err != nil {
		return nil, err
	}
	return &SetHomePrice{Price: price}, nil
}

func createSetTimeHorizon(params map[string]string) (InputTransform, error) {
	years, err := intParam(params, "set_time_horizon", "years")
	if err != nil {
		return nil, err
	}
	return &SetTimeHorizon{Years: years}, nil
}

func createSetMortgageTerm(params map[string]string) (InputTransform, error) {
	years, err := intParam(params, "set_mortgage_term", "years")
	if err != nil {
		return nil, err
	}
	return &SetMortgageTerm{Years: years}, nil
}

func createSetRent(params map[string]string) (InputTransform, error) {
	monthly, err := decimalParam(params, "set_rent", "monthly")
	if err != nil {
		return nil, err
	}
	return &SetRent{Monthly: monthly}, nil
}

func createSetAppreciation(params map[string]string) (InputTransform, error) {
	percent, err := decimalParam(params, "set_appreciation", "percent")
	if err != nil {
		return nil, err
	}
	return &SetAppreciation{Percent: percent}, nil
}

func createSetLocation(params map[string]string) (InputTransform, error) {
	state, ok := params["state"]
	if !ok {
		return nil, fmt.Errorf("set_location requires 'state' parameter")
	}
	return &SetLocation{State: state}, nil
}
