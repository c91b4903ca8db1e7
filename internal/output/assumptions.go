package output

import "github.com/rpgo/pension-drawdown/internal/domain"

// DefaultAssumptions lists the policy rules rendered when a comparison carries none.
var DefaultAssumptions = domain.DefaultPolicyRules().Assumptions()

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return DefaultAssumptions
}
