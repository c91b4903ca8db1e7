package output

import (
	"context"
	"testing"

	"github.com/rpgo/pension-drawdown/internal/calculation"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testHousehold() domain.SimulationConfig {
	return domain.SimulationConfig{
		TargetAnnualSpending:    decimal.NewFromInt(48_000_000),
		ReturnRate:              decimal.NewFromFloat(0.03),
		PropertyValue:           decimal.NewFromInt(900_000_000),
		IRPBalance:              decimal.NewFromInt(250_000_000),
		SavingsBalance:          decimal.NewFromInt(150_000_000),
		NationalPensionAmount:   decimal.NewFromInt(18_000_000),
		NationalPensionStartAge: 65,
	}
}

// buildTestComparison runs the default household with and without a housing annuity.
func buildTestComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	housing := testHousehold()
	housing.UseHousingAnnuity = true

	cfg := &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "Baseline", Household: testHousehold()},
		{Name: "Housing Annuity", Household: housing},
	}}
	cmp, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	return cmp
}
