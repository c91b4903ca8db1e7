package calculation

import (
	"fmt"

	"github.com/rpgo/pension-drawdown/internal/domain"
	won "github.com/rpgo/pension-drawdown/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Summarize derives the headline metrics of a simulated record sequence
func Summarize(name string, household domain.SimulationConfig, records []domain.YearRecord, rules domain.PolicyRules) domain.ScenarioSummary {
	summary := domain.ScenarioSummary{
		Name:      name,
		Household: household,
		Records:   records,
	}

	var totalNet decimal.Decimal
	for _, r := range records {
		totalNet = totalNet.Add(r.NetIncome)
		summary.LifetimeDeduction = summary.LifetimeDeduction.Add(r.TotalDeduction)

		summary.Totals.NationalPension = summary.Totals.NationalPension.Add(r.NationalPension)
		summary.Totals.SavingsWithdrawal = summary.Totals.SavingsWithdrawal.Add(r.SavingsWithdrawal)
		summary.Totals.IRPWithdrawal = summary.Totals.IRPWithdrawal.Add(r.IRPWithdrawal)
		summary.Totals.HousingAnnuity = summary.Totals.HousingAnnuity.Add(r.HousingAnnuity)

		if r.InsuranceStatus == domain.SelfEnrolled {
			summary.SelfEnrolledYears++
			if summary.FirstSelfEnrolledAge == nil {
				age := r.Age
				summary.FirstSelfEnrolledAge = &age
			}
		}
		if r.RemainingAssets.IsPositive() {
			age := r.Age
			summary.LastFundedAge = &age
		}
	}
	summary.LifetimeNetIncome = totalNet

	if len(records) > 0 {
		summary.AverageMonthlyNet = totalNet.Div(decimal.NewFromInt(int64(len(records)))).Div(decimal.NewFromInt(12))
		summary.FinalAssets = records[len(records)-1].RemainingAssets
	}

	summary.Advice = GenerateAdvice(&summary, rules)
	return summary
}

// GenerateAdvice produces the plain-language guidance shown with a scenario.
func GenerateAdvice(summary *domain.ScenarioSummary, rules domain.PolicyRules) []string {
	var advice []string

	if summary.FirstSelfEnrolledAge != nil {
		advice = append(advice, fmt.Sprintf(
			"Health insurance: contributions are owed from age %d (%d years in total); keep taxable income at or below %s to stay a dependent.",
			*summary.FirstSelfEnrolledAge, summary.SelfEnrolledYears, won.FormatWon(rules.IncomeThreshold)))
	} else {
		advice = append(advice, "Health insurance: dependent status holds for the whole plan.")
	}

	switch {
	case summary.LastFundedAge == nil:
		advice = append(advice, "Liquid assets: nothing remains after the first year.")
	case *summary.LastFundedAge >= domain.SimulationEndAge:
		advice = append(advice, fmt.Sprintf("Liquid assets: last through age %d with %s remaining.",
			domain.SimulationEndAge, won.FormatWon(summary.FinalAssets)))
	default:
		advice = append(advice, fmt.Sprintf("Liquid assets: last through age %d.", *summary.LastFundedAge))
	}

	if summary.Household.UseHousingAnnuity {
		advice = append(advice, fmt.Sprintf("Housing annuity: adds %s per year and is excluded from taxable income.",
			won.FormatWon(HousingAnnuityForRun(summary.Household, rules))))
	}
	return advice
}

// rankScenarios fills the best-scenario fields of a comparison. Ties keep the first scenario.
func (ce *CalculationEngine) rankScenarios(comparison *domain.ScenarioComparison) {
	var bestIncome, bestAssets, lowestDeduction *domain.ScenarioSummary
	for i := range comparison.Scenarios {
		sc := &comparison.Scenarios[i]
		if bestIncome == nil || sc.AverageMonthlyNet.GreaterThan(bestIncome.AverageMonthlyNet) {
			bestIncome = sc
		}
		if bestAssets == nil || sc.FinalAssets.GreaterThan(bestAssets.FinalAssets) {
			bestAssets = sc
		}
		if lowestDeduction == nil || sc.LifetimeDeduction.LessThan(lowestDeduction.LifetimeDeduction) {
			lowestDeduction = sc
		}
	}
	if bestIncome == nil {
		return
	}
	comparison.BestForMonthlyIncome = bestIncome.Name
	comparison.BestForFinalAssets = bestAssets.Name
	comparison.LowestLifetimeExpense = lowestDeduction.Name
}
