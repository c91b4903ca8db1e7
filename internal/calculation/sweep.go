package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

// maxConcurrentRuns limits how many simulations a sweep runs at once
const maxConcurrentRuns = 10

// SweepPoint is the outcome of one household simulated at one annual return rate
type SweepPoint struct {
	ReturnRate          decimal.Decimal `json:"return_rate"`
	AverageMonthlyNet   decimal.Decimal `json:"average_monthly_net"`
	FinalAssets         decimal.Decimal `json:"final_assets"`
	LastFundedAge       *int            `json:"last_funded_age,omitempty"`
	SelfEnrolledYears   int             `json:"self_enrolled_years"`
	SustainableSpending decimal.Decimal `json:"sustainable_annual_spending"`
}

// DefaultSweepRates returns the return rates 0%, 1%, ... 10%.
func DefaultSweepRates() []decimal.Decimal {
	rates := make([]decimal.Decimal, 0, 11)
	for pct := int64(0); pct <= 10; pct++ {
		rates = append(rates, decimal.New(pct, -2))
	}
	return rates
}

// ReturnRateSweep re-runs a household once per return rate, keeping every other input fixed.
// Runs execute in parallel; points come back in the order of rates.
func (ce *CalculationEngine) ReturnRateSweep(ctx context.Context, cfg domain.SimulationConfig, rates []decimal.Decimal) ([]SweepPoint, error) {
	if len(rates) == 0 {
		rates = DefaultSweepRates()
	}

	quiet := *ce
	quiet.Debug = false

	points := make([]SweepPoint, len(rates))
	errs := make([]error, len(rates))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentRuns)

	for i, rate := range rates {
		wg.Add(1)
		go func(i int, rate decimal.Decimal) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			points[i], errs[i] = quiet.sweepPoint(cfg, rate)
		}(i, rate)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("return rate %s: %w", rates[i].String(), err)
		}
	}
	ce.Logger.Infof("return rate sweep: %d rates", len(points))
	return points, nil
}

func (ce *CalculationEngine) sweepPoint(cfg domain.SimulationConfig, rate decimal.Decimal) (SweepPoint, error) {
	cfg.ReturnRate = rate
	records, err := ce.Simulate(cfg)
	if err != nil {
		return SweepPoint{}, err
	}
	summary := Summarize("", cfg, records, ce.Rules)
	spend, err := ce.SustainableSpending(cfg)
	if err != nil {
		return SweepPoint{}, err
	}
	return SweepPoint{
		ReturnRate:          rate,
		AverageMonthlyNet:   summary.AverageMonthlyNet,
		FinalAssets:         summary.FinalAssets,
		LastFundedAge:       summary.LastFundedAge,
		SelfEnrolledYears:   summary.SelfEnrolledYears,
		SustainableSpending: spend,
	}, nil
}
