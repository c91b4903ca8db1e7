package calculation

import (
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

// spendingStep is the resolution of the sustainable spending search (1만원).
var spendingStep = decimal.NewFromInt(10_000)

// SustainableSpending finds the largest annual spending target, in steps of 10,000 won,
// that the household's income sources cover in every year from 60 to 90.
// Savings draws do not depend on the target, so only the IRP decides when coverage fails.
func (ce *CalculationEngine) SustainableSpending(cfg domain.SimulationConfig) (decimal.Decimal, error) {
	if err := cfg.Validate(); err != nil {
		return decimal.Zero, err
	}

	quiet := *ce
	quiet.Debug = false

	covers := func(units int64) (bool, error) {
		trial := cfg
		trial.TargetAnnualSpending = spendingStep.Mul(decimal.NewFromInt(units))
		records, err := quiet.Simulate(trial)
		if err != nil {
			return false, err
		}
		for _, r := range records {
			if r.GrossIncome().LessThan(trial.TargetAnnualSpending) {
				return false, nil
			}
		}
		return true, nil
	}

	// No year can pay out more than every pool combined, so this bound is never covered.
	rules := ce.Rules
	ceiling := cfg.IRPBalance.Add(cfg.SavingsBalance).
		Add(cfg.NationalPensionAmount.Mul(ClaimingAdjustmentFactor(domain.MaxPensionStartAge, rules))).
		Add(HousingAnnuityForRun(cfg, rules))

	lo := int64(0)
	hi := ceiling.Div(spendingStep).Ceil().IntPart() + 1
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		ok, err := covers(mid)
		if err != nil {
			return decimal.Zero, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid
		}
	}

	ce.Logger.Debugf("sustainable spending: %s", spendingStep.Mul(decimal.NewFromInt(lo)).StringFixed(0))
	return spendingStep.Mul(decimal.NewFromInt(lo)), nil
}
