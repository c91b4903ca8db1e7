package models

import (
	"github.com/rpgo/pension-drawdown/internal/calculation"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	Status  string              `json:"status"`
	Summary SimulationSummary   `json:"summary"`
	Records []domain.YearRecord `json:"records"`
}

// SweepResponse holds one household re-run across a range of return rates
type SweepResponse struct {
	Status string                   `json:"status"`
	Name   string                   `json:"name"`
	Points []calculation.SweepPoint `json:"points"`
}

// SimulationSummary contains the headline metrics of a run
type SimulationSummary struct {
	Name                 string                `json:"name"`
	AverageMonthlyNet    decimal.Decimal       `json:"average_monthly_net"`
	LifetimeDeduction    decimal.Decimal       `json:"lifetime_deduction"`
	LifetimeNetIncome    decimal.Decimal       `json:"lifetime_net_income"`
	FinalAssets          decimal.Decimal       `json:"final_assets"`
	FirstSelfEnrolledAge *int                  `json:"first_self_enrolled_age"`
	SelfEnrolledYears    int                   `json:"self_enrolled_years"`
	LastFundedAge        *int                  `json:"last_funded_age"`
	SustainableSpending  decimal.Decimal       `json:"sustainable_annual_spending"`
	Totals               domain.IncomeBySource `json:"totals"`
	Advice               []string              `json:"advice"`
}

// NewSimulationSummary copies the metrics of a scenario summary without its records
func NewSimulationSummary(s *domain.ScenarioSummary) SimulationSummary {
	return SimulationSummary{
		Name:                 s.Name,
		AverageMonthlyNet:    s.AverageMonthlyNet,
		LifetimeDeduction:    s.LifetimeDeduction,
		LifetimeNetIncome:    s.LifetimeNetIncome,
		FinalAssets:          s.FinalAssets,
		FirstSelfEnrolledAge: s.FirstSelfEnrolledAge,
		SelfEnrolledYears:    s.SelfEnrolledYears,
		LastFundedAge:        s.LastFundedAge,
		SustainableSpending:  s.SustainableSpending,
		Totals:               s.Totals,
		Advice:               s.Advice,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned by the API
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeInternal          = "INTERNAL_ERROR"
)
