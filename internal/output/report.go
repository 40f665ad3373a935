package output

import (
	"time"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ScenarioReport pairs one scenario's inputs with everything computed from them
type ScenarioReport struct {
	Name           string                  `json:"name" yaml:"name"`
	Description    string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Inputs         domain.ProjectionInputs `json:"inputs" yaml:"inputs"`
	Validation     domain.ValidationResult `json:"validation" yaml:"validation"`
	MonthlyPayment decimal.Decimal         `json:"monthlyPayment" yaml:"monthly_payment"`
	PMI            domain.PMIResult        `json:"pmi" yaml:"pmi"`
	Result         domain.ProjectionResult `json:"result" yaml:"result"`
}

// RentBuyReport is the input to every Formatter
type RentBuyReport struct {
	TaxYear     int              `json:"taxYear" yaml:"tax_year"`
	GeneratedAt time.Time        `json:"generatedAt" yaml:"generated_at"`
	Assumptions []string         `json:"assumptions" yaml:"assumptions"`
	Scenarios   []ScenarioReport `json:"scenarios" yaml:"scenarios"`
}

// BuildRentBuyReport runs every scenario through the engine.
// Invalid inputs are still projected; their validation errors travel with the report.
func BuildRentBuyReport(engine *calculation.CalculationEngine, scenarios []domain.Scenario) *RentBuyReport {
	report := &RentBuyReport{
		TaxYear:     engine.Policy.Year,
		GeneratedAt: time.Now(),
		Assumptions: Assumptions(engine.Policy),
	}

	for _, s := range scenarios {
		in := s.Inputs
		result := engine.CalculateRentVsBuy(in)
		result.Name = s.Name
		report.Scenarios = append(report.Scenarios, ScenarioReport{
			Name:           s.Name,
			Description:    s.Description,
			Inputs:         in,
			Validation:     engine.ValidateInputs(in),
			MonthlyPayment: calculation.MonthlyMortgagePayment(in.HomePrice, in.DownPaymentPercent, in.InterestRate, in.MortgageTerm).Round(2),
			PMI:            engine.CalculatePMI(in.HomePrice, in.DownPaymentPercent),
			Result:         result,
		})
	}

	return report
}
