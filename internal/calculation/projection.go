package calculation

import (
	"github.com/rpgo/pension-drawdown/internal/domain"
)

// Simulate runs the yearly drawdown for a household with the default policy rules.
func Simulate(cfg domain.SimulationConfig) ([]domain.YearRecord, error) {
	return NewCalculationEngine().Simulate(cfg)
}

// Simulate produces one record per age from 60 to 90. Each year the national pension
// and housing annuity are paid first, pension savings are drawn within the threshold
// headroom, and the IRP covers any remaining shortfall against the spending target.
// Balances grow after the year's snapshot, so growth shows up in the next year.
func (ce *CalculationEngine) Simulate(cfg domain.SimulationConfig) ([]domain.YearRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules := ce.Rules

	irp := cfg.IRPBalance
	sav := cfg.SavingsBalance
	housing := HousingAnnuityForRun(cfg, rules)

	records := make([]domain.YearRecord, 0, domain.SimulationYears)
	for age := domain.SimulationStartAge; age <= domain.SimulationEndAge; age++ {
		pension := NationalPensionForAge(cfg.NationalPensionAmount, cfg.NationalPensionStartAge, age, rules)

		savingsDraw := WithdrawSavings(sav, pension, rules)
		sav = sav.Sub(savingsDraw)

		covered := pension.Add(savingsDraw).Add(housing)
		irpDraw := WithdrawShortfall(irp, cfg.TargetAnnualSpending, covered)
		irp = irp.Sub(irpDraw)

		// housing annuity is not part of the taxable base
		taxable := pension.Add(savingsDraw).Add(irpDraw)
		hi := CalculateHealthInsurance(taxable, cfg.PropertyValue, rules)
		deduction := TotalDeduction(hi.Contribution, taxable, rules)

		records = append(records, domain.YearRecord{
			Age:                   age,
			NationalPension:       pension,
			SavingsWithdrawal:     savingsDraw,
			IRPWithdrawal:         irpDraw,
			HousingAnnuity:        housing,
			TaxableBase:           taxable,
			InsuranceContribution: hi.Contribution,
			TotalDeduction:        deduction,
			NetIncome:             taxable.Add(housing).Sub(deduction),
			InsuranceStatus:       hi.Status,
			RemainingAssets:       irp.Add(sav),
		})

		if ce.Debug {
			ce.Logger.Debugf("age %d: pension=%s savings=%s irp=%s housing=%s taxable=%s status=%s remaining=%s",
				age, pension.StringFixed(0), savingsDraw.StringFixed(0), irpDraw.StringFixed(0),
				housing.StringFixed(0), taxable.StringFixed(0), hi.Status, irp.Add(sav).StringFixed(0))
		}

		irp = growBalance(irp, cfg.ReturnRate)
		sav = growBalance(sav, cfg.ReturnRate)
	}

	return records, nil
}
