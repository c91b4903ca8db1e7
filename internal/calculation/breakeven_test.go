package calculation

import (
	"testing"

	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

func netRecords(nets ...int64) []domain.YearRecord {
	records := make([]domain.YearRecord, len(nets))
	for i, n := range nets {
		records[i] = domain.YearRecord{
			Age:       domain.SimulationStartAge + i,
			NetIncome: decimal.NewFromInt(n),
		}
	}
	return records
}

// Test exact year-end crossover
func TestCalculateCumulativeBreakEven_ExactYear(t *testing.T) {
	// A and B cross exactly at the end of age 61 with cumulative 300
	res, err := CalculateCumulativeBreakEven(netRecords(100, 200), netRecords(150, 150))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil {
		t.Fatalf("expected crossover, got nil")
	}
	if res.Age != 61 {
		t.Fatalf("expected age 61, got %d", res.Age)
	}
	if !res.CumulativeAmount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected cumulative 300, got %s", res.CumulativeAmount.String())
	}
	if res.Month != 12 {
		t.Fatalf("expected month 12, got %d", res.Month)
	}
}

// Test mid-year interpolation crossover
func TestCalculateCumulativeBreakEven_Interpolation(t *testing.T) {
	// After age 60: A=100, B=80 (diff=20)
	// Age 61: A=200, B=220 (diff=-20), so t = 20/(20+20) = 0.5
	res, err := CalculateCumulativeBreakEven(netRecords(100, 100), netRecords(80, 140))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil {
		t.Fatalf("expected crossover, got nil")
	}
	if !res.Fraction.Equal(decimal.NewFromFloat(0.5)) {
		t.Fatalf("expected fraction 0.5, got %s", res.Fraction.String())
	}
	if res.FractionalAge != 61.5 {
		t.Fatalf("expected fractional age 61.5, got %v", res.FractionalAge)
	}
	if res.Month != 6 {
		t.Fatalf("expected month 6, got %d", res.Month)
	}
	if !res.CumulativeAmount.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected cumulative 150, got %s", res.CumulativeAmount.String())
	}
}

// Identical runs never diverge, so there is no crossover
func TestCalculateCumulativeBreakEven_IdenticalRuns(t *testing.T) {
	res, err := CalculateCumulativeBreakEven(netRecords(100, 100, 100), netRecords(100, 100, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected no crossover, got age %d", res.Age)
	}
}

// One run always ahead
func TestCalculateCumulativeBreakEven_NoCrossover(t *testing.T) {
	res, err := CalculateCumulativeBreakEven(netRecords(200, 200, 200), netRecords(100, 150, 190))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected no crossover, got age %d", res.Age)
	}
}

// Runs of different lengths are compared over the shorter one
func TestCalculateCumulativeBreakEven_UnevenLengths(t *testing.T) {
	res, err := CalculateCumulativeBreakEven(netRecords(0, 0, 300), netRecords(100, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected no crossover within the shorter run, got age %d", res.Age)
	}
}

func TestCalculateCumulativeBreakEven_Empty(t *testing.T) {
	if _, err := CalculateCumulativeBreakEven(nil, netRecords(1)); err == nil {
		t.Fatalf("expected error for empty projection")
	}
}
