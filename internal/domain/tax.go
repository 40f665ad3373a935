package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilingStatus is a federal income tax filing status
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married_joint"
	FilingMarriedSeparate FilingStatus = "married_separate"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// ParseFilingStatus accepts the canonical names plus a few common aliases
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "":
		return FilingSingle, nil
	case "married_joint", "married-joint", "mfj", "married_filing_jointly", "married":
		return FilingMarriedJoint, nil
	case "married_separate", "married-separate", "mfs", "married_filing_separately":
		return FilingMarriedSeparate, nil
	case "head_of_household", "head-of-household", "hoh":
		return FilingHeadOfHousehold, nil
	default:
		return "", fmt.Errorf("unknown filing status %q", s)
	}
}

// IncomeCategory classifies an income source for payroll tax purposes
type IncomeCategory string

const (
	IncomeWages          IncomeCategory = "wages"
	IncomeSelfEmployment IncomeCategory = "self_employment"
	IncomeInvestment     IncomeCategory = "investment"
	IncomeRental         IncomeCategory = "rental"
	IncomeOther          IncomeCategory = "other"
)

// IncomeSource is one line of household income
type IncomeSource struct {
	Name     string          `yaml:"name" json:"name"`
	Category IncomeCategory  `yaml:"category" json:"category"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
}

// AccountKind is a tax-advantaged account type
type AccountKind string

const (
	Account401k           AccountKind = "401k"
	AccountIRATraditional AccountKind = "ira-traditional"
	AccountIRARoth        AccountKind = "ira-roth"
	AccountHSA            AccountKind = "hsa"
)

// AccountKinds lists every supported account kind in display order
var AccountKinds = []AccountKind{Account401k, AccountIRATraditional, AccountIRARoth, AccountHSA}

// LimitGroup names the contribution limit an account kind counts against.
// Traditional and Roth IRAs share one annual limit.
type LimitGroup string

const (
	Limit401k LimitGroup = "401k"
	LimitIRA  LimitGroup = "ira"
	LimitHSA  LimitGroup = "hsa"
)

// PreTax reports whether contributions reduce adjusted gross income
func (k AccountKind) PreTax() bool {
	switch k {
	case Account401k, AccountIRATraditional, AccountHSA:
		return true
	default:
		return false
	}
}

// LimitGroup returns the shared limit bucket for the account kind
func (k AccountKind) LimitGroup() LimitGroup {
	switch k {
	case Account401k:
		return Limit401k
	case AccountIRATraditional, AccountIRARoth:
		return LimitIRA
	default:
		return LimitHSA
	}
}

// Valid reports whether k is one of the known account kinds
func (k AccountKind) Valid() bool {
	for _, known := range AccountKinds {
		if k == known {
			return true
		}
	}
	return false
}

// HSACoverage selects which HSA limit applies
type HSACoverage string

const (
	HSANone   HSACoverage = "none"
	HSASelf   HSACoverage = "self"
	HSAFamily HSACoverage = "family"
)

// UserState is the snapshot the progressive tax engine works from
type UserState struct {
	FilingStatus       FilingStatus                    `yaml:"filing_status" json:"filingStatus"`
	State              string                          `yaml:"state" json:"state"`
	StateTaxRate       *decimal.Decimal                `yaml:"state_tax_rate,omitempty" json:"stateTaxRate,omitempty"` // percent
	IncomeSources      []IncomeSource                  `yaml:"income_sources" json:"incomeSources"`
	Contributions      map[AccountKind]decimal.Decimal `yaml:"contributions" json:"contributions"`
	HSACoverage        HSACoverage                     `yaml:"hsa_coverage" json:"hsaCoverage"`
	UseItemized        bool                            `yaml:"use_itemized" json:"useItemized"`
	ItemizedDeductions decimal.Decimal                 `yaml:"itemized_deductions" json:"itemizedDeductions"`
}

// Contribution returns the amount contributed to the given account kind
func (u UserState) Contribution(kind AccountKind) decimal.Decimal {
	if u.Contributions == nil {
		return decimal.Zero
	}
	return u.Contributions[kind]
}

// BracketTax is the tax owed inside one federal bracket
type BracketTax struct {
	Rate          decimal.Decimal  `json:"rate" yaml:"rate"`
	Min           decimal.Decimal  `json:"min" yaml:"min"`
	Max           *decimal.Decimal `json:"max,omitempty" yaml:"max,omitempty"`
	TaxableAmount decimal.Decimal  `json:"taxableAmount" yaml:"taxable_amount"`
	Tax           decimal.Decimal  `json:"tax" yaml:"tax"`
}

// SavingsPoint is one year of the contribution growth comparison
type SavingsPoint struct {
	Year      int             `json:"year" yaml:"year"`
	Current   decimal.Decimal `json:"current" yaml:"current"`
	Optimized decimal.Decimal `json:"optimized" yaml:"optimized"`
}

// TaxResult is the full output of the progressive tax engine
type TaxResult struct {
	TaxYear             int                                `json:"taxYear" yaml:"tax_year"`
	FilingStatus        FilingStatus                       `json:"filingStatus" yaml:"filing_status"`
	TotalIncome         decimal.Decimal                    `json:"totalIncome" yaml:"total_income"`
	IncomeByCategory    map[IncomeCategory]decimal.Decimal `json:"incomeByCategory" yaml:"income_by_category"`
	PreTaxContributions decimal.Decimal                    `json:"preTaxContributions" yaml:"pre_tax_contributions"`
	AdjustedGrossIncome decimal.Decimal                    `json:"adjustedGrossIncome" yaml:"adjusted_gross_income"`
	Deduction           decimal.Decimal                    `json:"deduction" yaml:"deduction"`
	UsedItemized        bool                               `json:"usedItemized" yaml:"used_itemized"`
	TaxableIncome       decimal.Decimal                    `json:"taxableIncome" yaml:"taxable_income"`
	FederalTax          decimal.Decimal                    `json:"federalTax" yaml:"federal_tax"`
	StateTax            decimal.Decimal                    `json:"stateTax" yaml:"state_tax"`
	SocialSecurityTax   decimal.Decimal                    `json:"socialSecurityTax" yaml:"social_security_tax"`
	MedicareTax         decimal.Decimal                    `json:"medicareTax" yaml:"medicare_tax"`
	FICATax             decimal.Decimal                    `json:"ficaTax" yaml:"fica_tax"`
	SelfEmploymentTax   decimal.Decimal                    `json:"selfEmploymentTax" yaml:"self_employment_tax"`
	TotalTax            decimal.Decimal                    `json:"totalTax" yaml:"total_tax"`
	MarginalRate        decimal.Decimal                    `json:"marginalRate" yaml:"marginal_rate"`
	EffectiveTaxRate    decimal.Decimal                    `json:"effectiveTaxRate" yaml:"effective_tax_rate"`
	AfterTaxIncome      decimal.Decimal                    `json:"afterTaxIncome" yaml:"after_tax_income"`
	TotalContributions  decimal.Decimal                    `json:"totalContributions" yaml:"total_contributions"`
	SavingsRate         decimal.Decimal                    `json:"savingsRate" yaml:"savings_rate"`
	UnusedRoom          map[AccountKind]decimal.Decimal    `json:"unusedRoom" yaml:"unused_room"`
	BracketBreakdown    []BracketTax                       `json:"bracketBreakdown" yaml:"bracket_breakdown"`
	Tips                []string                           `json:"tips" yaml:"tips"`
	ProjectedSavings    []SavingsPoint                     `json:"projectedSavings" yaml:"projected_savings"`
}
