package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/transform"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct {
	transforms *transform.TransformRegistry
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{transforms: transform.NewTransformRegistry()}
}

// scenarioFile mirrors the on-disk layout. Defaults and per-scenario inputs are
// kept as nodes so they can be decoded on top of a base value.
type scenarioFile struct {
	TaxYear   int                 `yaml:"tax_year"`
	Defaults  yaml.Node           `yaml:"defaults"`
	Scenarios []scenarioFileEntry `yaml:"scenarios"`
	Tax       *domain.UserState   `yaml:"tax"`
	FIRE      *domain.FIREInputs  `yaml:"fire"`
}

type scenarioFileEntry struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Transforms  []string  `yaml:"transforms"`
	Inputs      yaml.Node `yaml:"inputs"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
// JSON files use the same snake_case keys as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a scenario file, merges each scenario onto the defaults,
// applies scenario transforms and validates the result.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var raw scenarioFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config, err := ip.build(&raw)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (ip *InputParser) build(raw *scenarioFile) (*domain.Configuration, error) {
	config := &domain.Configuration{
		TaxYear:  raw.TaxYear,
		Defaults: domain.DefaultProjectionInputs(),
		Tax:      raw.Tax,
		FIRE:     raw.FIRE,
	}

	if !isEmptyNode(&raw.Defaults) {
		if err := raw.Defaults.Decode(&config.Defaults); err != nil {
			return nil, fmt.Errorf("failed to parse defaults: %w", err)
		}
	}

	entries := raw.Scenarios
	if len(entries) == 0 && !isEmptyNode(&raw.Defaults) {
		entries = []scenarioFileEntry{{Name: "base", Description: "File defaults"}}
	}

	for i, entry := range entries {
		inputs := config.Defaults.Clone()
		if !isEmptyNode(&entry.Inputs) {
			if err := entry.Inputs.Decode(&inputs); err != nil {
				return nil, fmt.Errorf("scenario %d (%s) inputs: %w", i, entry.Name, err)
			}
		}

		if len(entry.Transforms) > 0 {
			transforms, err := ip.transforms.ParseAll(entry.Transforms)
			if err != nil {
				return nil, fmt.Errorf("scenario %d (%s) transforms: %w", i, entry.Name, err)
			}
			inputs, err = transform.ApplyTransforms(inputs, transforms)
			if err != nil {
				return nil, fmt.Errorf("scenario %d (%s) transforms: %w", i, entry.Name, err)
			}
		}

		config.Scenarios = append(config.Scenarios, domain.Scenario{
			Name:        entry.Name,
			Description: entry.Description,
			Transforms:  entry.Transforms,
			Inputs:      inputs,
		})
	}

	if config.Tax != nil {
		status, err := domain.ParseFilingStatus(string(config.Tax.FilingStatus))
		if err != nil {
			return nil, fmt.Errorf("tax: %w", err)
		}
		config.Tax.FilingStatus = status
	}

	return config, nil
}

func isEmptyNode(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// ValidateConfiguration checks the structure of a loaded configuration.
// Financial sanity checks (ranges, affordability) belong to calculation.ValidateInputs.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 && config.Tax == nil && config.FIRE == nil {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	if config.Tax != nil {
		if err := ip.validateTax(config.Tax); err != nil {
			return fmt.Errorf("tax validation failed: %w", err)
		}
	}

	if config.FIRE != nil {
		if err := ip.validateFIRE(config.FIRE); err != nil {
			return fmt.Errorf("fire validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("name is required")
	}

	in := scenario.Inputs
	if in.TimeHorizon <= 0 {
		return fmt.Errorf("time horizon must be positive")
	}
	if in.MortgageTerm <= 0 {
		return fmt.Errorf("mortgage term must be positive")
	}
	if in.HomePrice.IsNegative() {
		return fmt.Errorf("home price cannot be negative")
	}
	if in.MonthlyRent.IsNegative() {
		return fmt.Errorf("monthly rent cannot be negative")
	}
	switch in.MaritalStatus {
	case domain.MaritalSingle, domain.MaritalMarried:
	default:
		return fmt.Errorf("marital status must be single or married, got %q", in.MaritalStatus)
	}
	if rate := in.Location.PropertyTaxRate; rate != nil && rate.IsNegative() {
		return fmt.Errorf("property tax rate cannot be negative")
	}

	return nil
}

func (ip *InputParser) validateTax(user *domain.UserState) error {
	for i, src := range user.IncomeSources {
		switch src.Category {
		case domain.IncomeWages, domain.IncomeSelfEmployment, domain.IncomeInvestment, domain.IncomeRental, domain.IncomeOther:
		default:
			return fmt.Errorf("income source %d (%s): unknown category %q", i, src.Name, src.Category)
		}
		if src.Amount.IsNegative() {
			return fmt.Errorf("income source %d (%s): amount cannot be negative", i, src.Name)
		}
	}

	for kind, amount := range user.Contributions {
		if !kind.Valid() {
			return fmt.Errorf("unknown account kind %q", kind)
		}
		if amount.IsNegative() {
			return fmt.Errorf("contribution to %s cannot be negative", kind)
		}
	}

	switch user.HSACoverage {
	case "", domain.HSANone, domain.HSASelf, domain.HSAFamily:
	default:
		return fmt.Errorf("hsa coverage must be none, self or family, got %q", user.HSACoverage)
	}

	return nil
}

func (ip *InputParser) validateFIRE(in *domain.FIREInputs) error {
	if in.CurrentAge <= 0 {
		return fmt.Errorf("current age must be positive")
	}
	if in.MaxAge != 0 && in.MaxAge <= in.CurrentAge {
		return fmt.Errorf("max age must be greater than current age")
	}
	if in.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative")
	}
	if in.AnnualExpenses.IsNegative() {
		return fmt.Errorf("annual expenses cannot be negative")
	}
	return nil
}
