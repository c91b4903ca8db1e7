package output

import (
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName      string
	AverageMonthlyNet decimal.Decimal
	MonthlyNetChange  decimal.Decimal // against the first scenario
	PercentageChange  decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the highest average monthly net income and
// compares it with the first scenario, which is treated as the baseline.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	baseline := results.Scenarios[0].AverageMonthlyNet
	best := results.Scenarios[0]
	for _, sc := range results.Scenarios[1:] {
		if sc.AverageMonthlyNet.GreaterThan(best.AverageMonthlyNet) {
			best = sc
		}
	}
	delta := best.AverageMonthlyNet.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimalHundred)
	}
	return Recommendation{
		ScenarioName:      best.Name,
		AverageMonthlyNet: best.AverageMonthlyNet,
		MonthlyNetChange:  delta,
		PercentageChange:  pct,
	}
}
