package salarytemplate

import "github.com/shopspring/decimal"

// EvaluateGrossWage sums the active fixed-amount earnings of a template.
// A nil template, an empty component list or a list with no qualifying
// entries all evaluate to zero. Negative amounts are summed as stored.
func EvaluateGrossWage(template *SalaryTemplate) decimal.Decimal {
	if template == nil {
		return decimal.Zero
	}
	return SumGross(ParseComponents(template.Components))
}

func SumGross(components []Component) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		if !c.ContributesToGross() {
			continue
		}
		total = total.Add(c.Value.Decimal)
	}
	return total
}
