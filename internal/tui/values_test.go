package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/rpgo/pension-drawdown/internal/calculation"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormValues(t *testing.T) {
	v := DefaultFormValues()
	assert.Equal(t, "4800", v.TargetManwon)
	assert.Equal(t, "3", v.ReturnPercent)
	assert.Equal(t, "90000", v.PropertyManwon)
	assert.Equal(t, "25000", v.IRPManwon)
	assert.Equal(t, "15000", v.SavingsManwon)
	assert.Equal(t, "1800", v.PensionManwon)
	assert.Equal(t, 65, v.PensionStartAge)
	assert.False(t, v.UseHousingAnnuity)
}

func TestToSimulationConfig_Defaults(t *testing.T) {
	cfg, err := DefaultFormValues().ToSimulationConfig()
	require.NoError(t, err)
	assert.True(t, cfg.TargetAnnualSpending.Equal(decimal.NewFromInt(48_000_000)))
	assert.True(t, cfg.ReturnRate.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, cfg.PropertyValue.Equal(decimal.NewFromInt(900_000_000)))
	assert.True(t, cfg.IRPBalance.Equal(decimal.NewFromInt(250_000_000)))
	assert.True(t, cfg.SavingsBalance.Equal(decimal.NewFromInt(150_000_000)))
	assert.True(t, cfg.NationalPensionAmount.Equal(decimal.NewFromInt(18_000_000)))
	assert.Equal(t, 65, cfg.NationalPensionStartAge)
}

func TestToSimulationConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *FormValues)
	}{
		{"target below range", func(v *FormValues) { v.TargetManwon = "999" }},
		{"target not a number", func(v *FormValues) { v.TargetManwon = "lots" }},
		{"empty savings", func(v *FormValues) { v.SavingsManwon = " " }},
		{"pension above range", func(v *FormValues) { v.PensionManwon = "10001" }},
		{"return above range", func(v *FormValues) { v.ReturnPercent = "11" }},
		{"start age", func(v *FormValues) { v.PensionStartAge = 71 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DefaultFormValues()
			tt.mutate(&v)
			_, err := v.ToSimulationConfig()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestParseManwon(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"4800", "4800"},
		{"4,800", "4800"},
		{" 4800만원 ", "4800"},
		{"4800만", "4800"},
		{"1500.5", "1500.5"},
	}
	for _, tt := range tests {
		got, err := parseManwon(tt.raw, balanceRange)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got.String(), tt.raw)
	}

	_, err := parseManwon("-1", balanceRange)
	assert.ErrorContains(t, err, "must be between 0 and 1,000,000")
	_, err = parseManwon("", balanceRange)
	assert.ErrorIs(t, err, errRequired)
}

func TestParsePercent(t *testing.T) {
	rate, err := parsePercent("3.5%")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.035")))

	rate, err = parsePercent("0")
	require.NoError(t, err)
	assert.True(t, rate.IsZero())

	_, err = parsePercent("10.1")
	assert.Error(t, err)
	_, err = parsePercent("abc")
	assert.Error(t, err)
}

func TestManwonPreview(t *testing.T) {
	assert.Equal(t, "48,000,000원", manwonPreview("4800"))
	assert.Equal(t, "", manwonPreview("x"))
}

func TestStartAgeOptions(t *testing.T) {
	opts := startAgeOptions()
	require.Len(t, opts, 11)
	assert.Equal(t, 60, opts[0].Value)
	assert.Equal(t, "60 (early)", opts[0].Key)
	assert.Equal(t, "65 (standard)", opts[5].Key)
	assert.Equal(t, 70, opts[10].Value)
}

func TestNewForm(t *testing.T) {
	v := DefaultFormValues()
	assert.NotNil(t, NewForm(&v))
}

type fakeForm struct {
	values *FormValues
	edit   func(*FormValues)
	err    error
}

func (f fakeForm) RunWithContext(context.Context) error {
	if f.edit != nil {
		f.edit(f.values)
	}
	return f.err
}

func TestSession_Run(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(calculation.NewCalculationEngine(), &out)
	s.Form = func(v *FormValues) FormRunner {
		return fakeForm{values: v, edit: func(v *FormValues) { v.UseHousingAnnuity = true }}
	}

	cmp, err := s.Run(context.Background(), DefaultFormValues())
	require.NoError(t, err)
	require.Len(t, cmp.Scenarios, 1)
	assert.Equal(t, "Interactive (housing annuity)", cmp.Scenarios[0].Name)
	assert.Contains(t, out.String(), "PENSION DRAWDOWN SUMMARY")
	assert.Contains(t, out.String(), "INCOME BY SOURCE")
	// age 60 net with a housing annuity
	assert.Contains(t, out.String(), "44,764,800")
}

func TestSession_Aborted(t *testing.T) {
	s := NewSession(calculation.NewCalculationEngine(), &bytes.Buffer{})
	s.Form = func(v *FormValues) FormRunner { return fakeForm{values: v, err: huh.ErrUserAborted} }

	_, err := s.Run(context.Background(), DefaultFormValues())
	assert.ErrorIs(t, err, ErrAborted)
}

func TestSession_InvalidValues(t *testing.T) {
	s := NewSession(calculation.NewCalculationEngine(), &bytes.Buffer{})
	s.Form = func(v *FormValues) FormRunner {
		return fakeForm{values: v, edit: func(v *FormValues) { v.IRPManwon = "-5" }}
	}

	_, err := s.Run(context.Background(), DefaultFormValues())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
