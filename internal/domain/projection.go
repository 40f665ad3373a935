package domain

import (
	"github.com/shopspring/decimal"
)

// YearResult is one simulated year of a rent-vs-buy projection.
// The first five fields are the headline series; the rest explain them.
type YearResult struct {
	Year                  int             `json:"year" yaml:"year"`
	BuyingCumulativeCost  decimal.Decimal `json:"buyingCumulativeCost" yaml:"buying_cumulative_cost"`
	RentingCumulativeCost decimal.Decimal `json:"rentingCumulativeCost" yaml:"renting_cumulative_cost"`
	BuyingEquity          decimal.Decimal `json:"buyingEquity" yaml:"buying_equity"`
	BuyingNetCost         decimal.Decimal `json:"buyingNetCost" yaml:"buying_net_cost"`

	HomeValue         decimal.Decimal `json:"homeValue" yaml:"home_value"`
	MortgageBalance   decimal.Decimal `json:"mortgageBalance" yaml:"mortgage_balance"`
	MortgagePayment   decimal.Decimal `json:"mortgagePayment" yaml:"mortgage_payment"`
	InterestPaid      decimal.Decimal `json:"interestPaid" yaml:"interest_paid"`
	PrincipalPaid     decimal.Decimal `json:"principalPaid" yaml:"principal_paid"`
	PMICost           decimal.Decimal `json:"pmiCost" yaml:"pmi_cost"`
	PMIRemoved        bool            `json:"pmiRemoved" yaml:"pmi_removed"`
	MaintenanceCost   decimal.Decimal `json:"maintenanceCost" yaml:"maintenance_cost"`
	AdditionalCost    decimal.Decimal `json:"additionalCost" yaml:"additional_cost"`
	TaxSavings        decimal.Decimal `json:"taxSavings" yaml:"tax_savings"`
	AnnualBuyingCost  decimal.Decimal `json:"annualBuyingCost" yaml:"annual_buying_cost"`
	AnnualRentingCost decimal.Decimal `json:"annualRentingCost" yaml:"annual_renting_cost"`
	MonthlyRent       decimal.Decimal `json:"monthlyRent" yaml:"monthly_rent"`
	RentersInsurance  decimal.Decimal `json:"rentersInsurance" yaml:"renters_insurance"`
	InvestmentBalance decimal.Decimal `json:"investmentBalance" yaml:"investment_balance"`
}

// ProjectionSummary describes the end state of a projection
type ProjectionSummary struct {
	TotalBuyingCost   decimal.Decimal `json:"totalBuyingCost" yaml:"total_buying_cost"`
	TotalRentingCost  decimal.Decimal `json:"totalRentingCost" yaml:"total_renting_cost"`
	FinalHomeValue    decimal.Decimal `json:"finalHomeValue" yaml:"final_home_value"`
	FinalEquity       decimal.Decimal `json:"finalEquity" yaml:"final_equity"`
	SellingCosts      decimal.Decimal `json:"sellingCosts" yaml:"selling_costs"`
	NetBuyingCost     decimal.Decimal `json:"netBuyingCost" yaml:"net_buying_cost"`
	InvestmentBalance decimal.Decimal `json:"investmentBalance" yaml:"investment_balance"`
	TotalTaxSavings   decimal.Decimal `json:"totalTaxSavings" yaml:"total_tax_savings"`
}

// ProjectionResult is the full output of a rent-vs-buy run.
// BreakEvenYear is nil when buying never catches up within the horizon.
type ProjectionResult struct {
	Name          string            `json:"name,omitempty" yaml:"name,omitempty"`
	Results       []YearResult      `json:"results" yaml:"results"`
	Summary       ProjectionSummary `json:"summary" yaml:"summary"`
	BreakEvenYear *int              `json:"breakEvenYear" yaml:"break_even_year"`
}

// SimulationState is the value threaded from one simulated year to the next
type SimulationState struct {
	MortgageBalance   decimal.Decimal
	HomeValue         decimal.Decimal
	MonthlyRent       decimal.Decimal
	InvestmentBalance decimal.Decimal
	PMIRemoved        bool

	CumulativeBuyingCost  decimal.Decimal
	CumulativeRentingCost decimal.Decimal
	TotalTaxSavings       decimal.Decimal
}

// Equity is the owner's stake in the home at this point
func (s SimulationState) Equity() decimal.Decimal {
	return s.HomeValue.Sub(s.MortgageBalance)
}

// ValidationResult lists every violated input rule in check order
type ValidationResult struct {
	IsValid bool     `json:"isValid" yaml:"is_valid"`
	Errors  []string `json:"errors" yaml:"errors"`
}

// PMIResult describes private mortgage insurance for a purchase
type PMIResult struct {
	MonthlyPMI  decimal.Decimal `json:"monthlyPMI" yaml:"monthly_pmi"`
	AnnualPMI   decimal.Decimal `json:"annualPMI" yaml:"annual_pmi"`
	PMIRequired bool            `json:"pmiRequired" yaml:"pmi_required"`
}

// TaxBenefitResult is the homeowner deduction estimate for one year
type TaxBenefitResult struct {
	AnnualTaxSavings      decimal.Decimal `json:"annualTaxSavings" yaml:"annual_tax_savings"`
	MarginalTaxRate       decimal.Decimal `json:"marginalTaxRate" yaml:"marginal_tax_rate"`
	ItemizedDeductions    decimal.Decimal `json:"itemizedDeductions" yaml:"itemized_deductions"`
	StandardDeduction     decimal.Decimal `json:"standardDeduction" yaml:"standard_deduction"`
	MortgageInterest      decimal.Decimal `json:"mortgageInterest" yaml:"mortgage_interest"`
	DeductiblePropertyTax decimal.Decimal `json:"deductiblePropertyTax" yaml:"deductible_property_tax"`
}

// AmortizationRow is one monthly payment of a loan schedule
type AmortizationRow struct {
	Month     int             `json:"month" yaml:"month"`
	Payment   decimal.Decimal `json:"payment" yaml:"payment"`
	Principal decimal.Decimal `json:"principal" yaml:"principal"`
	Interest  decimal.Decimal `json:"interest" yaml:"interest"`
	Balance   decimal.Decimal `json:"balance" yaml:"balance"`
}
