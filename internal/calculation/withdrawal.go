package calculation

import (
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

// SavingsWithdrawalCap is the most that may be drawn from pension savings in a year
// so that pension plus savings stays within the income threshold.
func SavingsWithdrawalCap(nationalPension decimal.Decimal, rules domain.PolicyRules) decimal.Decimal {
	return decimal.Max(decimal.Zero, rules.IncomeThreshold.Sub(nationalPension))
}

// WithdrawSavings returns this year's pension savings withdrawal: the smallest of the
// balance, the annual cap and the threshold headroom left by the national pension.
func WithdrawSavings(balance, nationalPension decimal.Decimal, rules domain.PolicyRules) decimal.Decimal {
	return decimal.Min(balance, rules.SavingsAnnualCap, SavingsWithdrawalCap(nationalPension, rules))
}

// WithdrawShortfall returns the IRP withdrawal covering whatever part of the target
// is not already covered, limited to the balance. A negative shortfall draws nothing.
func WithdrawShortfall(balance, target, covered decimal.Decimal) decimal.Decimal {
	need := target.Sub(covered)
	return decimal.Min(balance, decimal.Max(decimal.Zero, need))
}

// growBalance applies one year of returns. Balances never go below zero.
func growBalance(balance, returnRate decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, balance.Mul(one.Add(returnRate)))
}
