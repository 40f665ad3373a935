package policy

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

const locationsFile = "locations.yaml"

// Registry holds the tax-year policy tables and the location table
type Registry struct {
	mu        sync.RWMutex
	years     map[int]*domain.TaxYearPolicy
	locations *domain.LocationTable
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded tables.
// The embedded files are part of the binary, so a parse failure is a build defect.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewEmbeddedRegistry()
		if err != nil {
			panic(fmt.Sprintf("embedded policy tables are invalid: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// NewEmbeddedRegistry parses every embedded policy file into a fresh registry
func NewEmbeddedRegistry() (*Registry, error) {
	r := &Registry{years: make(map[int]*domain.TaxYearPolicy)}

	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded policy directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		content, err := dataFS.ReadFile(path.Join("data", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to load policy file %s: %w", entry.Name(), err)
		}

		if entry.Name() == locationsFile {
			var table domain.LocationTable
			if err := yaml.Unmarshal(content, &table); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
			}
			r.locations = &table
			continue
		}

		p, err := Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		r.years[p.Year] = p
	}

	if r.locations == nil {
		return nil, fmt.Errorf("embedded location table %s is missing", locationsFile)
	}
	if len(r.years) == 0 {
		return nil, fmt.Errorf("no tax year policies embedded")
	}
	return r, nil
}

// Parse decodes and validates one tax-year policy document
func Parse(content []byte) (*domain.TaxYearPolicy, error) {
	var p domain.TaxYearPolicy
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}
	return &p, nil
}

// Validate checks the structural invariants the engines depend on
func Validate(p *domain.TaxYearPolicy) error {
	if p.Year <= 0 {
		return fmt.Errorf("year is required")
	}

	statuses := []domain.FilingStatus{
		domain.FilingSingle,
		domain.FilingMarriedJoint,
		domain.FilingMarriedSeparate,
		domain.FilingHeadOfHousehold,
	}
	for _, status := range statuses {
		brackets := p.FederalTax.Brackets.For(status)
		if len(brackets) == 0 {
			return fmt.Errorf("%s: no federal brackets", status)
		}
		if !brackets[0].Min.IsZero() {
			return fmt.Errorf("%s: first bracket must start at 0", status)
		}
		for i, b := range brackets {
			last := i == len(brackets)-1
			if last && b.Max != nil {
				return fmt.Errorf("%s: top bracket must be open-ended", status)
			}
			if !last {
				if b.Max == nil {
					return fmt.Errorf("%s: bracket %d has no upper bound", status, i)
				}
				if !b.Max.Equal(brackets[i+1].Min) {
					return fmt.Errorf("%s: bracket %d does not meet bracket %d", status, i, i+1)
				}
			}
		}
		if p.FederalTax.StandardDeduction.For(status).IsNegative() {
			return fmt.Errorf("%s: negative standard deduction", status)
		}
	}

	tiers := p.Housing.PMITiers
	if len(tiers) == 0 {
		return fmt.Errorf("housing: at least one PMI tier is required")
	}
	for i := 1; i < len(tiers); i++ {
		if !tiers[i].MinDownPercent.GreaterThan(tiers[i-1].MinDownPercent) {
			return fmt.Errorf("housing: PMI tiers must be ordered by down payment")
		}
		if !tiers[i].Rate.LessThan(tiers[i-1].Rate) {
			return fmt.Errorf("housing: PMI rates must decrease as down payment grows")
		}
	}
	if p.Savings.Years < 0 {
		return fmt.Errorf("savings: years cannot be negative")
	}
	return nil
}

// Year returns the policy for a tax year
func (r *Registry) Year(year int) (*domain.TaxYearPolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.years[year]
	if !ok {
		return nil, fmt.Errorf("no policy table for tax year %d (available: %v)", year, r.yearsLocked())
	}
	return p, nil
}

// Latest returns the policy for the most recent tax year
func (r *Registry) Latest() *domain.TaxYearPolicy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	years := r.yearsLocked()
	return r.years[years[len(years)-1]]
}

// Years lists available tax years in ascending order
func (r *Registry) Years() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.yearsLocked()
}

func (r *Registry) yearsLocked() []int {
	years := make([]int, 0, len(r.years))
	for y := range r.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Locations returns the location adjustment table
func (r *Registry) Locations() *domain.LocationTable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locations
}

// Register adds or replaces the policy for p.Year
func (r *Registry) Register(p *domain.TaxYearPolicy) error {
	if err := Validate(p); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.years[p.Year] = p
	return nil
}

// LoadFile reads a user policy file and registers it, replacing any
// embedded table for the same year
func (r *Registry) LoadFile(filename string) (*domain.TaxYearPolicy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := r.Register(p); err != nil {
		return nil, err
	}
	return p, nil
}
