package calculation

import (
	"errors"
	"math"

	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrEmptyProjection is returned when a break-even comparison has no records to compare.
var ErrEmptyProjection = errors.New("one or both projections are empty")

// CumulativeBreakEvenResult describes where cumulative net income of two runs becomes equal
type CumulativeBreakEvenResult struct {
	// Age of the year in which the crossover happens
	Age int `json:"age"`

	// Fraction (0..1] of that year elapsed at the crossover
	Fraction decimal.Decimal `json:"fraction_of_year"`

	// Age plus fraction, e.g. 71.5
	FractionalAge float64 `json:"fractional_age"`

	// Cumulative net income at the crossover (equal for both runs)
	CumulativeAmount decimal.Decimal `json:"cumulative_amount"`

	// Month of the crossover year, 1..12
	Month int `json:"month"`
}

// CalculateCumulativeBreakEven finds the first age at which the running total of net income
// of run A catches up with run B (or the other way round). Records are aligned by index.
// It returns nil, nil when the totals never cross.
func CalculateCumulativeBreakEven(a, b []domain.YearRecord) (*CumulativeBreakEvenResult, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyProjection
	}
	n := min(len(a), len(b))

	cumA := decimal.Zero
	cumB := decimal.Zero
	for i := 0; i < n; i++ {
		prevDiff := cumA.Sub(cumB)
		cumA = cumA.Add(a[i].NetIncome)
		cumB = cumB.Add(b[i].NetIncome)
		currDiff := cumA.Sub(cumB)

		// equal totals only count once the runs have actually diverged
		if currDiff.IsZero() {
			if prevDiff.IsZero() {
				continue
			}
			return breakEvenAt(a[i], cumA, one), nil
		}

		if prevDiff.Sign()*currDiff.Sign() < 0 {
			t := prevDiff.Neg().Div(currDiff.Sub(prevDiff))
			atCrossing := cumA.Sub(a[i].NetIncome).Add(a[i].NetIncome.Mul(t))
			return breakEvenAt(a[i], atCrossing, t), nil
		}
	}
	return nil, nil
}

func breakEvenAt(r domain.YearRecord, amount, fraction decimal.Decimal) *CumulativeBreakEvenResult {
	f := fraction.InexactFloat64()
	month := int(math.Ceil(f * 12))
	month = max(1, min(12, month))
	return &CumulativeBreakEvenResult{
		Age:              r.Age,
		Fraction:         fraction,
		FractionalAge:    float64(r.Age) + f,
		CumulativeAmount: amount,
		Month:            month,
	}
}
