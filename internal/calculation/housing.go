package calculation

import (
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

// housingAnnuityMinAge is the youngest age at which the housing annuity pays out.
const housingAnnuityMinAge = 60

// EstimateHousingAnnuity returns the annual reverse-mortgage payout for a property
// priced at the given age: value * (monthlyRate + yearsPast60 * ageBonusRate) * 12.
func EstimateHousingAnnuity(propertyValue decimal.Decimal, age int, rules domain.PolicyRules) decimal.Decimal {
	if age < housingAnnuityMinAge {
		return decimal.Zero
	}
	yearsPast := decimal.NewFromInt(int64(max(0, age-housingAnnuityMinAge)))
	rate := rules.HousingAnnuityMonthlyRate.Add(yearsPast.Mul(rules.HousingAnnuityAgeBonusRate))
	return propertyValue.Mul(rate).Mul(decimal.NewFromInt(12))
}

// HousingAnnuityForRun returns the constant annual housing annuity of a simulation run.
// The payout is always priced at HousingAnnuityReferenceAge, whatever the simulated age,
// so the age bonus term never contributes.
func HousingAnnuityForRun(cfg domain.SimulationConfig, rules domain.PolicyRules) decimal.Decimal {
	if !cfg.UseHousingAnnuity {
		return decimal.Zero
	}
	return EstimateHousingAnnuity(cfg.PropertyValue, domain.HousingAnnuityReferenceAge, rules)
}
