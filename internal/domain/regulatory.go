package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxYearPolicy contains the law-year specific tables the engines read from.
// It is loaded from an embedded YAML file per tax year and can be replaced
// wholesale by a user supplied file.
type TaxYearPolicy struct {
	Year           int                    `yaml:"year" json:"year"`
	Description    string                 `yaml:"description" json:"description"`
	FederalTax     FederalTaxRules        `yaml:"federal_tax" json:"federal_tax"`
	FICA           FICARules              `yaml:"fica" json:"fica"`
	SelfEmployment SelfEmploymentRules    `yaml:"self_employment" json:"self_employment"`
	Limits         ContributionLimits     `yaml:"contribution_limits" json:"contribution_limits"`
	Housing        HousingRules           `yaml:"housing" json:"housing"`
	Savings        SavingsProjectionRules `yaml:"savings" json:"savings"`
}

// TaxBracket is one band of a progressive schedule. Rate is a fraction
// (0.22 for 22%). A nil Max marks the open-ended top bracket.
type TaxBracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Contains reports whether min <= income < max
func (b TaxBracket) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || income.LessThan(*b.Max)
}

// FederalTaxRules contains federal income tax rules
type FederalTaxRules struct {
	Brackets          FilingBrackets     `yaml:"brackets" json:"brackets"`
	StandardDeduction StandardDeductions `yaml:"standard_deduction" json:"standard_deduction"`
	SALTCap           decimal.Decimal    `yaml:"salt_cap" json:"salt_cap"`
}

// FilingBrackets holds one bracket schedule per filing status
type FilingBrackets struct {
	Single          []TaxBracket `yaml:"single" json:"single"`
	MarriedJoint    []TaxBracket `yaml:"married_joint" json:"married_joint"`
	MarriedSeparate []TaxBracket `yaml:"married_separate" json:"married_separate"`
	HeadOfHousehold []TaxBracket `yaml:"head_of_household" json:"head_of_household"`
}

// For returns the schedule for a filing status, falling back to single
func (f FilingBrackets) For(status FilingStatus) []TaxBracket {
	switch status {
	case FilingMarriedJoint:
		return f.MarriedJoint
	case FilingMarriedSeparate:
		return f.MarriedSeparate
	case FilingHeadOfHousehold:
		return f.HeadOfHousehold
	default:
		return f.Single
	}
}

// StandardDeductions contains standard deduction amounts by filing status
type StandardDeductions struct {
	Single          decimal.Decimal `yaml:"single" json:"single"`
	MarriedJoint    decimal.Decimal `yaml:"married_joint" json:"married_joint"`
	MarriedSeparate decimal.Decimal `yaml:"married_separate" json:"married_separate"`
	HeadOfHousehold decimal.Decimal `yaml:"head_of_household" json:"head_of_household"`
}

// For returns the deduction for a filing status, falling back to single
func (s StandardDeductions) For(status FilingStatus) decimal.Decimal {
	switch status {
	case FilingMarriedJoint:
		return s.MarriedJoint
	case FilingMarriedSeparate:
		return s.MarriedSeparate
	case FilingHeadOfHousehold:
		return s.HeadOfHousehold
	default:
		return s.Single
	}
}

// FICARules contains payroll tax rules applied to wage income
type FICARules struct {
	SocialSecurityRate     decimal.Decimal `yaml:"social_security_rate" json:"social_security_rate"`
	SocialSecurityWageBase decimal.Decimal `yaml:"social_security_wage_base" json:"social_security_wage_base"`
	MedicareRate           decimal.Decimal `yaml:"medicare_rate" json:"medicare_rate"`
}

// SelfEmploymentRules contains the self-employment tax parameters
type SelfEmploymentRules struct {
	EarningsFactor decimal.Decimal `yaml:"earnings_factor" json:"earnings_factor"`
	Rate           decimal.Decimal `yaml:"rate" json:"rate"`
}

// ContributionLimits contains annual limits per limit group
type ContributionLimits struct {
	K401      decimal.Decimal `yaml:"401k" json:"401k"`
	IRA       decimal.Decimal `yaml:"ira" json:"ira"`
	HSASelf   decimal.Decimal `yaml:"hsa_self" json:"hsa_self"`
	HSAFamily decimal.Decimal `yaml:"hsa_family" json:"hsa_family"`
}

// For returns the annual limit for a group. HSA room is zero without coverage.
func (c ContributionLimits) For(group LimitGroup, coverage HSACoverage) decimal.Decimal {
	switch group {
	case Limit401k:
		return c.K401
	case LimitIRA:
		return c.IRA
	case LimitHSA:
		switch coverage {
		case HSAFamily:
			return c.HSAFamily
		case HSANone:
			return decimal.Zero
		default:
			return c.HSASelf
		}
	}
	return decimal.Zero
}

// PMITier applies Rate (annual fraction of the loan) from MinDownPercent upward
type PMITier struct {
	MinDownPercent decimal.Decimal `yaml:"min_down_percent" json:"min_down_percent"`
	Rate           decimal.Decimal `yaml:"rate" json:"rate"`
}

// HousingRules contains the rent-vs-buy model constants
type HousingRules struct {
	PMITiers             []PMITier       `yaml:"pmi_tiers" json:"pmi_tiers"`
	PMIExemptDownPercent decimal.Decimal `yaml:"pmi_exempt_down_percent" json:"pmi_exempt_down_percent"`
	PMIRemovalLTV        decimal.Decimal `yaml:"pmi_removal_ltv" json:"pmi_removal_ltv"`
	SellingCostRate      decimal.Decimal `yaml:"selling_cost_rate" json:"selling_cost_rate"`
	MaxHousingCostRatio  decimal.Decimal `yaml:"max_housing_cost_ratio" json:"max_housing_cost_ratio"` // percent of monthly income
	MaxRentRatio         decimal.Decimal `yaml:"max_rent_ratio" json:"max_rent_ratio"`                 // percent of monthly income
}

// SavingsProjectionRules drive the contribution growth comparison and tips
type SavingsProjectionRules struct {
	Years             int             `yaml:"years" json:"years"`
	Return            decimal.Decimal `yaml:"return" json:"return"`
	TargetSavingsRate decimal.Decimal `yaml:"target_savings_rate" json:"target_savings_rate"` // percent
}

// LocationRates are the per-region adjustments. Rates are percent values.
type LocationRates struct {
	Name            string          `yaml:"name" json:"name"`
	CostOfLiving    decimal.Decimal `yaml:"cost_of_living" json:"cost_of_living"`
	PropertyTaxRate decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	InsuranceRate   decimal.Decimal `yaml:"insurance_rate" json:"insurance_rate"`
	IncomeTaxRate   decimal.Decimal `yaml:"income_tax_rate" json:"income_tax_rate"`
}

// LocationTable maps region codes to their rates
type LocationTable struct {
	Baseline LocationRates            `yaml:"baseline" json:"baseline"`
	Regions  map[string]LocationRates `yaml:"regions" json:"regions"`
}

// Lookup returns the rates for a region code (case-insensitive). Unknown
// codes return the national baseline and false.
func (t *LocationTable) Lookup(code string) (LocationRates, bool) {
	if t == nil {
		return LocationRates{}, false
	}
	rates, ok := t.Regions[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return t.Baseline, false
	}
	return rates, true
}
