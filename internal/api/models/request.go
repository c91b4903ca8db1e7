package models

import "github.com/rpgo/pension-drawdown/internal/domain"

// SimulateRequest is the body of the simulate and export endpoints: the household
// parameters at the top level, plus an optional scenario name.
type SimulateRequest struct {
	Name string `json:"name,omitempty"`
	domain.SimulationConfig
}

// ScenarioName returns the request's name or a default.
func (r SimulateRequest) ScenarioName() string {
	if r.Name == "" {
		return "Scenario"
	}
	return r.Name
}
