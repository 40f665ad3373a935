package calculation

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateTaxResults computes the household's taxes, contribution room and
// savings outlook from one snapshot
func (ce *CalculationEngine) CalculateTaxResults(user domain.UserState) domain.TaxResult {
	p := ce.Policy
	status := user.FilingStatus
	if status == "" {
		status = domain.FilingSingle
	}

	byCategory := make(map[domain.IncomeCategory]decimal.Decimal)
	total := decimal.Zero
	for _, src := range user.IncomeSources {
		byCategory[src.Category] = byCategory[src.Category].Add(src.Amount)
		total = total.Add(src.Amount)
	}

	preTax, contributions := decimal.Zero, decimal.Zero
	for _, kind := range domain.AccountKinds {
		amount := decimal.Max(decimal.Zero, user.Contribution(kind))
		contributions = contributions.Add(amount)
		if kind.PreTax() {
			preTax = preTax.Add(amount)
		}
	}
	agi := decimal.Max(decimal.Zero, total.Sub(preTax))

	standard := p.FederalTax.StandardDeduction.For(status)
	deduction := standard
	if user.UseItemized {
		deduction = user.ItemizedDeductions
	}
	taxable := decimal.Max(decimal.Zero, agi.Sub(deduction))

	federal, breakdown := FederalTax(p.FederalTax.Brackets.For(status), taxable)
	marginal := marginalForTaxable(p.FederalTax.Brackets.For(status), taxable)

	stateRate := ce.CostOfLivingAdjustment(user.State).IncomeTaxRate
	if user.StateTaxRate != nil {
		stateRate = *user.StateTaxRate
	}
	stateTax := taxable.Mul(stateRate.Div(hundred))

	wages := byCategory[domain.IncomeWages]
	socialSecurity := decimal.Min(wages, p.FICA.SocialSecurityWageBase).Mul(p.FICA.SocialSecurityRate)
	medicare := wages.Mul(p.FICA.MedicareRate)
	fica := socialSecurity.Add(medicare)

	selfEmployment := decimal.Max(decimal.Zero, byCategory[domain.IncomeSelfEmployment]).
		Mul(p.SelfEmployment.EarningsFactor).
		Mul(p.SelfEmployment.Rate)

	totalTax := federal.Add(stateTax).Add(fica).Add(selfEmployment)
	savingsRate := percentOf(contributions, total)
	unused := ce.unusedRoom(user)

	result := domain.TaxResult{
		TaxYear:             p.Year,
		FilingStatus:        status,
		TotalIncome:         roundCents(total),
		IncomeByCategory:    byCategory,
		PreTaxContributions: roundCents(preTax),
		AdjustedGrossIncome: roundCents(agi),
		Deduction:           roundCents(deduction),
		UsedItemized:        user.UseItemized,
		TaxableIncome:       roundCents(taxable),
		FederalTax:          roundCents(federal),
		StateTax:            roundCents(stateTax),
		SocialSecurityTax:   roundCents(socialSecurity),
		MedicareTax:         roundCents(medicare),
		FICATax:             roundCents(fica),
		SelfEmploymentTax:   roundCents(selfEmployment),
		TotalTax:            roundCents(totalTax),
		MarginalRate:        marginal,
		EffectiveTaxRate:    roundCents(percentOf(totalTax, total)),
		AfterTaxIncome:      roundCents(total.Sub(totalTax)),
		TotalContributions:  roundCents(contributions),
		SavingsRate:         roundCents(savingsRate),
		UnusedRoom:          unused,
		BracketBreakdown:    breakdown,
	}
	result.Tips = ce.taxTips(user, &result, standard)
	result.ProjectedSavings = ce.projectSavings(contributions, user.HSACoverage)

	ce.Logger.Debugf("tax year %d %s: taxable %s, total tax %s",
		p.Year, status, result.TaxableIncome.StringFixed(2), result.TotalTax.StringFixed(2))
	return result
}

// FederalTax sums (min(taxable, max) - min) * rate over every bracket whose
// min is below the taxable income
func FederalTax(brackets []domain.TaxBracket, taxable decimal.Decimal) (decimal.Decimal, []domain.BracketTax) {
	total := decimal.Zero
	var breakdown []domain.BracketTax
	for _, b := range brackets {
		if !b.Min.LessThan(taxable) {
			break
		}
		upper := taxable
		if b.Max != nil {
			upper = decimal.Min(taxable, *b.Max)
		}
		amount := upper.Sub(b.Min)
		tax := amount.Mul(b.Rate)
		total = total.Add(tax)
		breakdown = append(breakdown, domain.BracketTax{
			Rate:          b.Rate,
			Min:           b.Min,
			Max:           b.Max,
			TaxableAmount: roundCents(amount),
			Tax:           roundCents(tax),
		})
	}
	return total, breakdown
}

// marginalForTaxable is the rate applied to the last dollar of taxable income
func marginalForTaxable(brackets []domain.TaxBracket, taxable decimal.Decimal) decimal.Decimal {
	if len(brackets) == 0 {
		return decimal.Zero
	}
	rate := brackets[0].Rate
	for _, b := range brackets {
		if b.Min.LessThan(taxable) {
			rate = b.Rate
		}
	}
	return rate
}

// unusedRoom reports remaining room per account kind. Both IRA kinds report
// the room left in their shared limit.
func (ce *CalculationEngine) unusedRoom(user domain.UserState) map[domain.AccountKind]decimal.Decimal {
	used := make(map[domain.LimitGroup]decimal.Decimal)
	for _, kind := range domain.AccountKinds {
		used[kind.LimitGroup()] = used[kind.LimitGroup()].Add(decimal.Max(decimal.Zero, user.Contribution(kind)))
	}

	room := make(map[domain.AccountKind]decimal.Decimal, len(domain.AccountKinds))
	for _, kind := range domain.AccountKinds {
		limit := ce.Policy.Limits.For(kind.LimitGroup(), user.HSACoverage)
		room[kind] = roundCents(decimal.Max(decimal.Zero, limit.Sub(used[kind.LimitGroup()])))
	}
	return room
}

// optimizedContribution is the sum of every limit group's annual limit
func (ce *CalculationEngine) optimizedContribution(coverage domain.HSACoverage) decimal.Decimal {
	limits := ce.Policy.Limits
	return limits.For(domain.Limit401k, coverage).
		Add(limits.For(domain.LimitIRA, coverage)).
		Add(limits.For(domain.LimitHSA, coverage))
}

// projectSavings compounds the current and the fully funded contribution
// side by side at the policy's fixed return
func (ce *CalculationEngine) projectSavings(current decimal.Decimal, coverage domain.HSACoverage) []domain.SavingsPoint {
	rules := ce.Policy.Savings
	optimized := decimal.Max(current, ce.optimizedContribution(coverage))
	factor := one.Add(rules.Return)

	points := make([]domain.SavingsPoint, 0, rules.Years)
	cur, opt := decimal.Zero, decimal.Zero
	for year := 1; year <= rules.Years; year++ {
		cur = cur.Mul(factor).Add(current)
		opt = opt.Mul(factor).Add(optimized)
		points = append(points, domain.SavingsPoint{
			Year:      year,
			Current:   roundCents(cur),
			Optimized: roundCents(opt),
		})
	}
	return points
}

func (ce *CalculationEngine) taxTips(user domain.UserState, r *domain.TaxResult, standard decimal.Decimal) []string {
	var tips []string

	if room := r.UnusedRoom[domain.Account401k]; room.IsPositive() {
		tips = append(tips, fmt.Sprintf(
			"You have $%s of unused 401(k) room. Contributing it would lower your taxable income.", room.StringFixed(0)))
	}
	if room := r.UnusedRoom[domain.AccountIRATraditional]; room.IsPositive() {
		tips = append(tips, fmt.Sprintf("You can still contribute $%s to an IRA this year.", room.StringFixed(0)))
	}
	if user.HSACoverage != domain.HSANone && user.HSACoverage != "" {
		if room := r.UnusedRoom[domain.AccountHSA]; room.IsPositive() {
			tips = append(tips, fmt.Sprintf(
				"Your HSA has $%s of unused room. HSA contributions are deductible and grow tax-free.", room.StringFixed(0)))
		}
	}

	target := ce.Policy.Savings.TargetSavingsRate
	if r.TotalIncome.IsPositive() && r.SavingsRate.LessThan(target) {
		tips = append(tips, fmt.Sprintf(
			"Your savings rate is %s%%, below the recommended %s%%.", r.SavingsRate.StringFixed(1), target.String()))
	}

	if !user.UseItemized && user.ItemizedDeductions.GreaterThan(standard) {
		tips = append(tips, fmt.Sprintf(
			"Your itemized deductions exceed the $%s standard deduction. Itemizing would lower your taxable income.",
			standard.StringFixed(0)))
	}
	if user.UseItemized && user.ItemizedDeductions.LessThan(standard) {
		tips = append(tips, fmt.Sprintf(
			"The $%s standard deduction is larger than your itemized deductions.", standard.StringFixed(0)))
	}

	if r.IncomeByCategory[domain.IncomeSelfEmployment].IsPositive() {
		tips = append(tips, "Self-employment income qualifies for a SEP-IRA or solo 401(k) with higher contribution limits.")
	}
	if r.MarginalRate.GreaterThanOrEqual(decimal.NewFromFloat(0.32)) {
		tips = append(tips, fmt.Sprintf(
			"At a %s%% marginal rate, pre-tax contributions save more today than Roth contributions.",
			r.MarginalRate.Mul(hundred).StringFixed(0)))
	}

	if len(tips) == 0 {
		tips = append(tips, "Your tax-advantaged accounts are fully funded. Keep it up.")
	}
	return tips
}
