package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fixed ages of the simulation window and the pension/annuity formulas.
const (
	SimulationStartAge = 60
	SimulationEndAge   = 90

	// PensionReferenceAge is the claiming age at which the national pension pays its base amount.
	PensionReferenceAge = 65
	MinPensionStartAge  = 60
	MaxPensionStartAge  = 70

	// HousingAnnuityReferenceAge is the age the housing annuity is always priced at.
	HousingAnnuityReferenceAge = 60
)

// SimulationYears is the number of records a simulation produces.
const SimulationYears = SimulationEndAge - SimulationStartAge + 1

// PolicyRules holds the rates and thresholds used by the drawdown simulation.
// Every field is used as is; WithDefaults fills zero fields of a partial literal.
type PolicyRules struct {
	// National pension claiming adjustments, per year away from the reference age
	LateClaimBonusRate    decimal.Decimal `yaml:"late_claim_bonus_rate" toml:"late_claim_bonus_rate" json:"late_claim_bonus_rate"`
	EarlyClaimPenaltyRate decimal.Decimal `yaml:"early_claim_penalty_rate" toml:"early_claim_penalty_rate" json:"early_claim_penalty_rate"`

	// Housing annuity (reverse mortgage) payout
	HousingAnnuityMonthlyRate  decimal.Decimal `yaml:"housing_annuity_monthly_rate" toml:"housing_annuity_monthly_rate" json:"housing_annuity_monthly_rate"`
	HousingAnnuityAgeBonusRate decimal.Decimal `yaml:"housing_annuity_age_bonus_rate" toml:"housing_annuity_age_bonus_rate" json:"housing_annuity_age_bonus_rate"`

	// Pension savings withdrawal policy
	SavingsAnnualCap decimal.Decimal `yaml:"savings_annual_cap" toml:"savings_annual_cap" json:"savings_annual_cap"`

	// Health insurance contribution
	IncomeThreshold        decimal.Decimal `yaml:"income_threshold" toml:"income_threshold" json:"income_threshold"`
	IncomePointsPerMillion decimal.Decimal `yaml:"income_points_per_million" toml:"income_points_per_million" json:"income_points_per_million"`
	PropertyPointsUnit     decimal.Decimal `yaml:"property_points_unit" toml:"property_points_unit" json:"property_points_unit"`
	PropertyPointsPerUnit  decimal.Decimal `yaml:"property_points_per_unit" toml:"property_points_per_unit" json:"property_points_per_unit"`
	PointValue             decimal.Decimal `yaml:"point_value" toml:"point_value" json:"point_value"`
	SurchargeRate          decimal.Decimal `yaml:"surcharge_rate" toml:"surcharge_rate" json:"surcharge_rate"`
}

// DefaultPolicyRules returns the rules the planner ships with.
func DefaultPolicyRules() PolicyRules {
	return PolicyRules{
		LateClaimBonusRate:         decimal.NewFromFloat(0.072),
		EarlyClaimPenaltyRate:      decimal.NewFromFloat(0.06),
		HousingAnnuityMonthlyRate:  decimal.NewFromFloat(0.002),
		HousingAnnuityAgeBonusRate: decimal.NewFromFloat(0.0001),
		SavingsAnnualCap:           decimal.NewFromInt(15_000_000),
		IncomeThreshold:            decimal.NewFromInt(20_000_000),
		IncomePointsPerMillion:     decimal.NewFromInt(20),
		PropertyPointsUnit:         decimal.NewFromInt(50_000_000),
		PropertyPointsPerUnit:      decimal.NewFromInt(15),
		PointValue:                 decimal.NewFromInt(2400),
		SurchargeRate:              decimal.NewFromFloat(0.05),
	}
}

// WithDefaults returns a copy of the rules with every zero field taken from DefaultPolicyRules.
func (r PolicyRules) WithDefaults() PolicyRules {
	d := DefaultPolicyRules()
	fill := func(v *decimal.Decimal, def decimal.Decimal) {
		if v.IsZero() {
			*v = def
		}
	}
	fill(&r.LateClaimBonusRate, d.LateClaimBonusRate)
	fill(&r.EarlyClaimPenaltyRate, d.EarlyClaimPenaltyRate)
	fill(&r.HousingAnnuityMonthlyRate, d.HousingAnnuityMonthlyRate)
	fill(&r.HousingAnnuityAgeBonusRate, d.HousingAnnuityAgeBonusRate)
	fill(&r.SavingsAnnualCap, d.SavingsAnnualCap)
	fill(&r.IncomeThreshold, d.IncomeThreshold)
	fill(&r.IncomePointsPerMillion, d.IncomePointsPerMillion)
	fill(&r.PropertyPointsUnit, d.PropertyPointsUnit)
	fill(&r.PropertyPointsPerUnit, d.PropertyPointsPerUnit)
	fill(&r.PointValue, d.PointValue)
	fill(&r.SurchargeRate, d.SurchargeRate)
	return r
}

// RuleOverrides is the rules section of a configuration file. Only the fields present
// in the file are set, so an explicit 0 switches a rule off instead of restoring its default.
type RuleOverrides struct {
	LateClaimBonusRate         *decimal.Decimal `yaml:"late_claim_bonus_rate,omitempty" toml:"late_claim_bonus_rate,omitempty" json:"late_claim_bonus_rate,omitempty"`
	EarlyClaimPenaltyRate      *decimal.Decimal `yaml:"early_claim_penalty_rate,omitempty" toml:"early_claim_penalty_rate,omitempty" json:"early_claim_penalty_rate,omitempty"`
	HousingAnnuityMonthlyRate  *decimal.Decimal `yaml:"housing_annuity_monthly_rate,omitempty" toml:"housing_annuity_monthly_rate,omitempty" json:"housing_annuity_monthly_rate,omitempty"`
	HousingAnnuityAgeBonusRate *decimal.Decimal `yaml:"housing_annuity_age_bonus_rate,omitempty" toml:"housing_annuity_age_bonus_rate,omitempty" json:"housing_annuity_age_bonus_rate,omitempty"`
	SavingsAnnualCap           *decimal.Decimal `yaml:"savings_annual_cap,omitempty" toml:"savings_annual_cap,omitempty" json:"savings_annual_cap,omitempty"`
	IncomeThreshold            *decimal.Decimal `yaml:"income_threshold,omitempty" toml:"income_threshold,omitempty" json:"income_threshold,omitempty"`
	IncomePointsPerMillion     *decimal.Decimal `yaml:"income_points_per_million,omitempty" toml:"income_points_per_million,omitempty" json:"income_points_per_million,omitempty"`
	PropertyPointsUnit         *decimal.Decimal `yaml:"property_points_unit,omitempty" toml:"property_points_unit,omitempty" json:"property_points_unit,omitempty"`
	PropertyPointsPerUnit      *decimal.Decimal `yaml:"property_points_per_unit,omitempty" toml:"property_points_per_unit,omitempty" json:"property_points_per_unit,omitempty"`
	PointValue                 *decimal.Decimal `yaml:"point_value,omitempty" toml:"point_value,omitempty" json:"point_value,omitempty"`
	SurchargeRate              *decimal.Decimal `yaml:"surcharge_rate,omitempty" toml:"surcharge_rate,omitempty" json:"surcharge_rate,omitempty"`
}

// RuleOverride pairs a configuration key with the override and the rule it replaces.
type RuleOverride struct {
	Key   string
	Value *decimal.Decimal
	Rule  *decimal.Decimal
}

// Fields lists every override against the matching field of rules, in declaration order.
func (o *RuleOverrides) Fields(rules *PolicyRules) []RuleOverride {
	return []RuleOverride{
		{"late_claim_bonus_rate", o.LateClaimBonusRate, &rules.LateClaimBonusRate},
		{"early_claim_penalty_rate", o.EarlyClaimPenaltyRate, &rules.EarlyClaimPenaltyRate},
		{"housing_annuity_monthly_rate", o.HousingAnnuityMonthlyRate, &rules.HousingAnnuityMonthlyRate},
		{"housing_annuity_age_bonus_rate", o.HousingAnnuityAgeBonusRate, &rules.HousingAnnuityAgeBonusRate},
		{"savings_annual_cap", o.SavingsAnnualCap, &rules.SavingsAnnualCap},
		{"income_threshold", o.IncomeThreshold, &rules.IncomeThreshold},
		{"income_points_per_million", o.IncomePointsPerMillion, &rules.IncomePointsPerMillion},
		{"property_points_unit", o.PropertyPointsUnit, &rules.PropertyPointsUnit},
		{"property_points_per_unit", o.PropertyPointsPerUnit, &rules.PropertyPointsPerUnit},
		{"point_value", o.PointValue, &rules.PointValue},
		{"surcharge_rate", o.SurchargeRate, &rules.SurchargeRate},
	}
}

// Apply returns base with every set override in place, zeros included.
func (o RuleOverrides) Apply(base PolicyRules) PolicyRules {
	for _, f := range o.Fields(&base) {
		if f.Value != nil {
			*f.Rule = *f.Value
		}
	}
	return base
}

var hundred = decimal.NewFromInt(100)

// Assumptions renders the rules as human readable lines for reports.
func (r PolicyRules) Assumptions() []string {
	return []string{
		fmt.Sprintf("Simulation window: age %d to %d, growth applied after each year's withdrawals", SimulationStartAge, SimulationEndAge),
		fmt.Sprintf("National pension: +%s%% per year claimed after %d, -%s%% per year claimed before",
			r.LateClaimBonusRate.Mul(hundred).String(), PensionReferenceAge, r.EarlyClaimPenaltyRate.Mul(hundred).String()),
		fmt.Sprintf("Housing annuity: %s%% of property value per month, priced at age %d",
			r.HousingAnnuityMonthlyRate.Mul(hundred).String(), HousingAnnuityReferenceAge),
		fmt.Sprintf("Pension savings: at most %s won per year, and pension plus savings kept within %s won",
			r.SavingsAnnualCap.StringFixed(0), r.IncomeThreshold.StringFixed(0)),
		fmt.Sprintf("Health insurance: dependent up to %s won taxable income, otherwise %s won per point",
			r.IncomeThreshold.StringFixed(0), r.PointValue.StringFixed(0)),
		fmt.Sprintf("Flat surcharge: %s%% of taxable income", r.SurchargeRate.Mul(hundred).String()),
	}
}
