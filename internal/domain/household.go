package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SimulationConfig holds the household parameters for a single drawdown run.
// All currency amounts are in won.
type SimulationConfig struct {
	TargetAnnualSpending    decimal.Decimal `yaml:"target_annual_spending" toml:"target_annual_spending" json:"target_annual_spending"`
	ReturnRate              decimal.Decimal `yaml:"return_rate" toml:"return_rate" json:"return_rate"`
	PropertyValue           decimal.Decimal `yaml:"property_value" toml:"property_value" json:"property_value"`
	UseHousingAnnuity       bool            `yaml:"use_housing_annuity" toml:"use_housing_annuity" json:"use_housing_annuity"`
	IRPBalance              decimal.Decimal `yaml:"irp_balance" toml:"irp_balance" json:"irp_balance"`
	SavingsBalance          decimal.Decimal `yaml:"savings_balance" toml:"savings_balance" json:"savings_balance"`
	NationalPensionAmount   decimal.Decimal `yaml:"national_pension_amount" toml:"national_pension_amount" json:"national_pension_amount"`
	NationalPensionStartAge int             `yaml:"national_pension_start_age" toml:"national_pension_start_age" json:"national_pension_start_age"`
}

// Validate rejects negative currency amounts and a pension start age outside [60,70].
// Every other combination is accepted.
func (c SimulationConfig) Validate() error {
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"target_annual_spending", c.TargetAnnualSpending},
		{"property_value", c.PropertyValue},
		{"irp_balance", c.IRPBalance},
		{"savings_balance", c.SavingsBalance},
		{"national_pension_amount", c.NationalPensionAmount},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative (got %s)", ErrInvalidInput, a.field, a.value.String())
		}
	}
	if c.NationalPensionStartAge < MinPensionStartAge || c.NationalPensionStartAge > MaxPensionStartAge {
		return fmt.Errorf("%w: national_pension_start_age must be between %d and %d (got %d)",
			ErrInvalidInput, MinPensionStartAge, MaxPensionStartAge, c.NationalPensionStartAge)
	}
	return nil
}

// TotalLiquidAssets returns the combined starting balance of both drawable pools.
func (c SimulationConfig) TotalLiquidAssets() decimal.Decimal {
	return c.IRPBalance.Add(c.SavingsBalance)
}

// Scenario is a named household configuration.
type Scenario struct {
	Name        string           `yaml:"name" toml:"name" json:"name"`
	Description string           `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Household   SimulationConfig `yaml:"household" toml:"household" json:"household"`
}

// OutputSettings controls where and how reports are written.
type OutputSettings struct {
	Format    string `yaml:"format,omitempty" toml:"format,omitempty" json:"format,omitempty"`
	Directory string `yaml:"directory,omitempty" toml:"directory,omitempty" json:"directory,omitempty"`
}

// Configuration is the top-level structure of a planner configuration file.
type Configuration struct {
	Rules     RuleOverrides  `yaml:"rules,omitempty" toml:"rules,omitempty" json:"rules,omitempty"`
	Scenarios []Scenario     `yaml:"scenarios" toml:"scenarios" json:"scenarios"`
	Output    OutputSettings `yaml:"output,omitempty" toml:"output,omitempty" json:"output,omitempty"`
}
