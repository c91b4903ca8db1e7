package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rpgo/pension-drawdown/internal/config"
	"github.com/rpgo/pension-drawdown/internal/domain"
	won "github.com/rpgo/pension-drawdown/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Field bounds of the planner controls, in 만원 unless noted.
var (
	targetRange   = bounds{1_000, 20_000}
	propertyRange = bounds{0, 1_000_000}
	balanceRange  = bounds{0, 1_000_000}
	pensionRange  = bounds{0, 10_000}
	returnRange   = bounds{0, 10} // percent
)

var errRequired = errors.New("is required")

type bounds struct{ min, max int64 }

func (b bounds) check(v decimal.Decimal) error {
	if v.LessThan(decimal.NewFromInt(b.min)) || v.GreaterThan(decimal.NewFromInt(b.max)) {
		return fmt.Errorf("must be between %s and %s",
			humanize.Comma(b.min), humanize.Comma(b.max))
	}
	return nil
}

// FormValues holds the raw text of the form fields. Amounts are entered in 만원
// (10,000 won) and the return rate in percent, matching how the planner is usually filled in.
type FormValues struct {
	TargetManwon      string
	ReturnPercent     string
	PropertyManwon    string
	UseHousingAnnuity bool
	IRPManwon         string
	SavingsManwon     string
	PensionManwon     string
	PensionStartAge   int
}

// NewFormValues pre-fills the form from a household.
func NewFormValues(h domain.SimulationConfig) FormValues {
	manwon := func(d decimal.Decimal) string { return won.NewWonFromDecimal(d).Manwon().String() }
	return FormValues{
		TargetManwon:      manwon(h.TargetAnnualSpending),
		ReturnPercent:     h.ReturnRate.Mul(decimal.NewFromInt(100)).String(),
		PropertyManwon:    manwon(h.PropertyValue),
		UseHousingAnnuity: h.UseHousingAnnuity,
		IRPManwon:         manwon(h.IRPBalance),
		SavingsManwon:     manwon(h.SavingsBalance),
		PensionManwon:     manwon(h.NationalPensionAmount),
		PensionStartAge:   h.NationalPensionStartAge,
	}
}

// DefaultFormValues returns the planner's default controls.
func DefaultFormValues() FormValues {
	return NewFormValues(config.DefaultHousehold())
}

// ToSimulationConfig converts the form into a household in won.
func (v FormValues) ToSimulationConfig() (domain.SimulationConfig, error) {
	cfg := domain.SimulationConfig{
		UseHousingAnnuity:       v.UseHousingAnnuity,
		NationalPensionStartAge: v.PensionStartAge,
	}
	fields := []struct {
		name string
		raw  string
		rng  bounds
		dst  *decimal.Decimal
	}{
		{"target annual spending", v.TargetManwon, targetRange, &cfg.TargetAnnualSpending},
		{"property value", v.PropertyManwon, propertyRange, &cfg.PropertyValue},
		{"IRP balance", v.IRPManwon, balanceRange, &cfg.IRPBalance},
		{"savings balance", v.SavingsManwon, balanceRange, &cfg.SavingsBalance},
		{"national pension", v.PensionManwon, pensionRange, &cfg.NationalPensionAmount},
	}
	for _, f := range fields {
		amount, err := parseManwon(f.raw, f.rng)
		if err != nil {
			return domain.SimulationConfig{}, fmt.Errorf("%w: %s %v", domain.ErrInvalidInput, f.name, err)
		}
		*f.dst = won.FromManwon(amount).Decimal
	}

	rate, err := parsePercent(v.ReturnPercent)
	if err != nil {
		return domain.SimulationConfig{}, fmt.Errorf("%w: return rate %v", domain.ErrInvalidInput, err)
	}
	cfg.ReturnRate = rate

	if err := config.ValidateHousehold(cfg); err != nil {
		return domain.SimulationConfig{}, err
	}
	return cfg, nil
}

// parseManwon parses an amount in 만원, tolerating thousands separators and a trailing 만원 unit.
func parseManwon(raw string, rng bounds) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "만원")
	s = strings.TrimSuffix(s, "만")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errRequired
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", raw)
	}
	if err := rng.check(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// parsePercent parses a percentage such as "3" or "3.5%" into a rate (0.03, 0.035).
func parsePercent(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if s == "" {
		return decimal.Zero, errRequired
	}
	pct, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", raw)
	}
	if err := returnRange.check(pct); err != nil {
		return decimal.Zero, err
	}
	return pct.Div(decimal.NewFromInt(100)), nil
}

// manwonPreview renders an amount entered in 만원 as won, for field descriptions.
func manwonPreview(raw string) string {
	amount, err := parseManwon(raw, bounds{0, 1 << 40})
	if err != nil {
		return ""
	}
	return won.FromManwon(amount).Format()
}
