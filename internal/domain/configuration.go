package domain

// Scenario is one named rent-vs-buy run inside a scenario file
type Scenario struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Transforms are applied in order after the scenario's overrides,
	// using the "name:key=value,..." syntax
	Transforms []string `yaml:"transforms,omitempty" json:"transforms,omitempty"`
	// Inputs are the defaults overlaid with the scenario's own fields
	Inputs ProjectionInputs `yaml:"-" json:"inputs"`
}

// Configuration represents the complete contents of a scenario file
type Configuration struct {
	TaxYear   int              `yaml:"tax_year,omitempty" json:"tax_year,omitempty"`
	Defaults  ProjectionInputs `yaml:"defaults" json:"defaults"`
	Scenarios []Scenario       `yaml:"scenarios" json:"scenarios"`
	Tax       *UserState       `yaml:"tax,omitempty" json:"tax,omitempty"`
	FIRE      *FIREInputs      `yaml:"fire,omitempty" json:"fire,omitempty"`
}

// FindScenario returns the scenario with the given name
func (c *Configuration) FindScenario(name string) (*Scenario, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}

// ScenarioNames lists scenario names in file order
func (c *Configuration) ScenarioNames() []string {
	names := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		names = append(names, s.Name)
	}
	return names
}
