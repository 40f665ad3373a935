package output

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Assumptions lists the key modeling assumptions rendered in detailed outputs,
// filled in from the policy table the report was computed with.
func Assumptions(p *domain.TaxYearPolicy) []string {
	if p == nil {
		return nil
	}
	h := p.Housing
	return []string{
		fmt.Sprintf("Tax brackets: %d federal tables held constant over the projection", p.Year),
		fmt.Sprintf("PMI waived at %s%% down; dropped once the balance falls to %s of the original price",
			h.PMIExemptDownPercent, FormatRate(h.PMIRemovalLTV)),
		fmt.Sprintf("Selling costs: %s of the final home value, scaled by local cost of living", FormatRate(h.SellingCostRate)),
		"Home value compounds once per year; maintenance tracks home value and inflation",
		"Renter invests the yearly surplus whenever buying costs more",
		"Break-even compares net buying cost with cumulative rent and ignores investment growth",
		fmt.Sprintf("Mortgage interest deduction limited by the %s property tax (SALT) cap", FormatCurrency(p.FederalTax.SALTCap)),
	}
}
