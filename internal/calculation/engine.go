package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/pension-drawdown/internal/domain"
)

// CalculationEngine runs drawdown simulations under a set of policy rules
type CalculationEngine struct {
	Rules  domain.PolicyRules
	Debug  bool // Log every simulated year
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with the default rules
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithRules(domain.DefaultPolicyRules())
}

// NewCalculationEngineWithRules creates a calculation engine with configurable rules.
// Zero-valued rule fields fall back to the defaults.
func NewCalculationEngineWithRules(rules domain.PolicyRules) *CalculationEngine {
	return &CalculationEngine{
		Rules:  rules.WithDefaults(),
		Logger: NopLogger{},
	}
}

// NewCalculationEngineWithOverrides creates a calculation engine from the default rules
// with a configuration file's overrides applied. Overrides set to zero stay zero.
func NewCalculationEngineWithOverrides(overrides domain.RuleOverrides) *CalculationEngine {
	return &CalculationEngine{
		Rules:  overrides.Apply(domain.DefaultPolicyRules()),
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario simulates a single named scenario and summarizes it
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := ce.Simulate(scenario.Household)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	summary := Summarize(scenario.Name, scenario.Household, records, ce.Rules)
	if summary.SustainableSpending, err = ce.SustainableSpending(scenario.Household); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	ce.Logger.Infof("scenario %q: avg monthly net %s, final assets %s",
		scenario.Name, summary.AverageMonthlyNet.StringFixed(0), summary.FinalAssets.StringFixed(0))
	return &summary, nil
}

// RunScenarios runs all scenarios and returns a comparison
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios provided", domain.ErrInvalidInput)
	}

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		scenarios[i] = *summary
	}

	comparison := &domain.ScenarioComparison{
		Scenarios:   scenarios,
		Assumptions: ce.Rules.Assumptions(),
	}
	ce.rankScenarios(comparison)
	return comparison, nil
}
