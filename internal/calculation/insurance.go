package calculation

import (
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

var million = decimal.NewFromInt(1_000_000)

// HealthInsurance is the contribution owed for a year and the resulting status.
type HealthInsurance struct {
	Points       decimal.Decimal
	Contribution decimal.Decimal
	Status       domain.InsuranceStatus
}

// CalculateHealthInsurance classifies a year's taxable income. Income at or below the
// threshold keeps dependent status with no contribution; above it the contribution is
// priced from income points and property points.
func CalculateHealthInsurance(taxableBase, propertyValue decimal.Decimal, rules domain.PolicyRules) HealthInsurance {
	if taxableBase.LessThanOrEqual(rules.IncomeThreshold) {
		return HealthInsurance{
			Points:       decimal.Zero,
			Contribution: decimal.Zero,
			Status:       domain.Dependent,
		}
	}

	incomePoints := taxableBase.Div(million).Mul(rules.IncomePointsPerMillion)
	propertyPoints := propertyValue.Div(rules.PropertyPointsUnit).Mul(rules.PropertyPointsPerUnit)
	points := incomePoints.Add(propertyPoints)

	return HealthInsurance{
		Points:       points,
		Contribution: points.Mul(rules.PointValue),
		Status:       domain.SelfEnrolled,
	}
}

// TotalDeduction adds the flat surcharge on taxable income to the insurance contribution.
func TotalDeduction(contribution, taxableBase decimal.Decimal, rules domain.PolicyRules) decimal.Decimal {
	return contribution.Add(taxableBase.Mul(rules.SurchargeRate))
}
