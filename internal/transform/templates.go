package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []InputTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common what-if variations
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Down payment
	for _, pct := range []int64{5, 10, 20} {
		registry.Register(Template{
			Name:        fmt.Sprintf("down_%d", pct),
			Description: fmt.Sprintf("Put %d%% down", pct),
			Transforms: []InputTransform{
				&SetDownPayment{Percent: decimal.NewFromInt(pct)},
			},
		})
	}

	// Interest rate
	registry.Register(Template{
		Name:        "rate_minus_1",
		Description: "Interest rate one point lower",
		Transforms:  []InputTransform{&AdjustInterestRate{Delta: decimal.NewFromInt(-1)}},
	})
	registry.Register(Template{
		Name:        "rate_plus_1",
		Description: "Interest rate one point higher",
		Transforms:  []InputTransform{&AdjustInterestRate{Delta: decimal.NewFromInt(1)}},
	})

	// Term and horizon
	registry.Register(Template{
		Name:        "term_15",
		Description: "15-year mortgage",
		Transforms:  []InputTransform{&SetMortgageTerm{Years: 15}},
	})
	for _, years := range []int{5, 20, 30} {
		registry.Register(Template{
			Name:        fmt.Sprintf("horizon_%d", years),
			Description: fmt.Sprintf("Stay %d years", years),
			Transforms:  []InputTransform{&SetTimeHorizon{Years: years}},
		})
	}

	// Market
	registry.Register(Template{
		Name:        "flat_market",
		Description: "No home appreciation",
		Transforms:  []InputTransform{&SetAppreciation{Percent: decimal.Zero}},
	})
	registry.Register(Template{
		Name:        "hot_market",
		Description: "6% yearly home appreciation",
		Transforms:  []InputTransform{&SetAppreciation{Percent: decimal.NewFromInt(6)}},
	})

	// Combinations
	registry.Register(Template{
		Name:        "starter_home",
		Description: "10% down on a 15-year mortgage, staying 5 years",
		Transforms: []InputTransform{
			&SetDownPayment{Percent: decimal.NewFromInt(10)},
			&SetMortgageTerm{Years: 15},
			&SetTimeHorizon{Years: 5},
		},
	})

	return registry
}

// ApplyTemplate applies a template to base inputs
func ApplyTemplate(base domain.ProjectionInputs, template Template) (domain.ProjectionInputs, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, name := range registry.List() {
		t := registry.templates[name]
		sb.WriteString(fmt.Sprintf("  %-16s %s\n", t.Name, t.Description))
	}

	sb.WriteString("\nUsage:\n")
	sb.WriteString("  fincalc compare scenarios.yaml --with down_10,rate_minus_1\n")
	sb.WriteString("  fincalc compare scenarios.yaml --with term_15,horizon_5\n")

	return sb.String()
}
