package calculation

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSustainableSpending(t *testing.T) {
	housing := scenarioA()
	housing.UseHousingAnnuity = true

	noGrowth := scenarioA()
	noGrowth.ReturnRate = decimal.Zero

	empty := domain.SimulationConfig{NationalPensionStartAge: 65}

	tests := []struct {
		name     string
		cfg      domain.SimulationConfig
		expected int64
	}{
		{"scenario A", scenarioA(), 30_990_000},
		{"housing annuity", housing, 52_590_000},
		{"no growth", noGrowth, 27_250_000},
		{"nothing to draw on", empty, 0},
	}

	ce := NewCalculationEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ce.SustainableSpending(tt.cfg)
			require.NoError(t, err)
			assertDecimal(t, d(tt.expected), got)
		})
	}
}

func TestSustainableSpending_IsCoveredEveryYear(t *testing.T) {
	ce := NewCalculationEngine()
	spend, err := ce.SustainableSpending(scenarioA())
	require.NoError(t, err)

	covered := scenarioA()
	covered.TargetAnnualSpending = spend
	records, err := ce.Simulate(covered)
	require.NoError(t, err)
	for _, r := range records {
		assert.False(t, r.GrossIncome().LessThan(spend), "age %d", r.Age)
	}

	short := scenarioA()
	short.TargetAnnualSpending = spend.Add(spendingStep)
	records, err = ce.Simulate(short)
	require.NoError(t, err)
	shortfall := false
	for _, r := range records {
		if r.GrossIncome().LessThan(short.TargetAnnualSpending) {
			shortfall = true
		}
	}
	assert.True(t, shortfall)
}

func TestSustainableSpending_IgnoresTargetAndKeepsDebugQuiet(t *testing.T) {
	var buf bytes.Buffer
	ce := NewCalculationEngine()
	ce.Debug = true
	ce.SetLogger(NewStdLogger(&buf, true))

	low := scenarioA()
	low.TargetAnnualSpending = d(1_000_000)
	got, err := ce.SustainableSpending(low)
	require.NoError(t, err)
	assertDecimal(t, d(30_990_000), got)
	assert.NotContains(t, buf.String(), "age 60:")
	assert.Contains(t, buf.String(), "DEBUG sustainable spending: 30990000")
	assert.True(t, ce.Debug)
}

func TestSustainableSpending_InvalidInput(t *testing.T) {
	cfg := scenarioA()
	cfg.NationalPensionStartAge = 75
	_, err := NewCalculationEngine().SustainableSpending(cfg)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestRunScenario_SetsSustainableSpending(t *testing.T) {
	summary, err := NewCalculationEngine().RunScenario(context.Background(), &domain.Scenario{Name: "Baseline", Household: scenarioA()})
	require.NoError(t, err)
	assertDecimal(t, d(30_990_000), summary.SustainableSpending)
}
