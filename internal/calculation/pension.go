package calculation

import (
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ClaimingAdjustmentFactor returns the multiplier applied to the base national pension
// for a given claiming age. Claiming after the reference age earns the late-claim bonus
// for every year of delay; claiming at or before it applies the early-claim penalty
// (zero years at the reference age, so the factor is exactly 1).
func ClaimingAdjustmentFactor(startAge int, rules domain.PolicyRules) decimal.Decimal {
	gap := decimal.NewFromInt(int64(startAge - domain.PensionReferenceAge))
	if gap.IsPositive() {
		return one.Add(gap.Mul(rules.LateClaimBonusRate))
	}
	return one.Add(gap.Mul(rules.EarlyClaimPenaltyRate))
}

// NationalPensionForAge returns the annual national pension paid at age.
// Nothing is paid before the claiming age.
func NationalPensionForAge(base decimal.Decimal, startAge, age int, rules domain.PolicyRules) decimal.Decimal {
	if age < startAge {
		return decimal.Zero
	}
	return base.Mul(ClaimingAdjustmentFactor(startAge, rules))
}
