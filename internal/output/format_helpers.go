package output

import (
	"strconv"

	"github.com/rpgo/pension-drawdown/internal/domain"
	won "github.com/rpgo/pension-drawdown/pkg/decimal"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as whole won with thousands separators.
func FormatCurrency(amount decimal.Decimal) string { return won.FormatWon(amount) }

// FormatPercentage formats a rate such as 0.03 as a percentage with one decimal.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(1) + "%"
}

// FormatAge renders an optional age, or fallback when it is nil.
func FormatAge(age *int, fallback string) string {
	if age == nil {
		return fallback
	}
	return strconv.Itoa(*age)
}

// RecordHeader is the column header shared by tabular exports; it matches the YearRecord field names.
var RecordHeader = []string{
	"Age",
	"NationalPension",
	"SavingsWithdrawal",
	"IRPWithdrawal",
	"HousingAnnuity",
	"TaxableBase",
	"InsuranceContribution",
	"TotalDeduction",
	"NetIncome",
	"InsuranceStatus",
	"RemainingAssets",
}

// recordAmounts returns the currency columns of a record in RecordHeader order.
func recordAmounts(r domain.YearRecord) []decimal.Decimal {
	return []decimal.Decimal{
		r.NationalPension,
		r.SavingsWithdrawal,
		r.IRPWithdrawal,
		r.HousingAnnuity,
		r.TaxableBase,
		r.InsuranceContribution,
		r.TotalDeduction,
		r.NetIncome,
	}
}

// recordCells renders a record as plain strings in RecordHeader order, amounts rounded to whole won.
func recordCells(r domain.YearRecord) []string {
	cells := []string{strconv.Itoa(r.Age)}
	for _, amount := range recordAmounts(r) {
		cells = append(cells, amount.StringFixed(0))
	}
	return append(cells, string(r.InsuranceStatus), r.RemainingAssets.StringFixed(0))
}
