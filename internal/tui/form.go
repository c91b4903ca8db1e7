package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/rpgo/pension-drawdown/internal/calculation"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/rpgo/pension-drawdown/internal/output"
)

// ErrAborted is returned when the user leaves the form without submitting it.
var ErrAborted = errors.New("interactive session aborted")

// startAgeOptions lists the claimable national pension ages.
func startAgeOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, domain.MaxPensionStartAge-domain.MinPensionStartAge+1)
	for age := domain.MinPensionStartAge; age <= domain.MaxPensionStartAge; age++ {
		label := fmt.Sprintf("%d", age)
		switch {
		case age < domain.PensionReferenceAge:
			label += " (early)"
		case age == domain.PensionReferenceAge:
			label += " (standard)"
		default:
			label += " (deferred)"
		}
		opts = append(opts, huh.NewOption(label, age))
	}
	return opts
}

func manwonValidator(rng bounds) func(string) error {
	return func(s string) error {
		_, err := parseManwon(s, rng)
		return err
	}
}

func percentValidator(s string) error {
	_, err := parsePercent(s)
	return err
}

// NewForm builds the scenario form bound to v.
func NewForm(v *FormValues) *huh.Form {
	manwonInput := func(title string, value *string, rng bounds) *huh.Input {
		return huh.NewInput().
			Title(title).
			Value(value).
			Validate(manwonValidator(rng)).
			DescriptionFunc(func() string { return manwonPreview(*value) }, value)
	}

	return huh.NewForm(
		huh.NewGroup(
			manwonInput("Target annual spending (만원)", &v.TargetManwon, targetRange),
			huh.NewInput().
				Title("Expected return (%)").
				Description("Applied to the IRP and savings balances after each year").
				Value(&v.ReturnPercent).
				Validate(percentValidator),
		).Title("Scenario"),
		huh.NewGroup(
			manwonInput("Property value (만원)", &v.PropertyManwon, propertyRange),
			huh.NewConfirm().
				Title("Include a housing annuity?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.UseHousingAnnuity),
		).Title("Real estate"),
		huh.NewGroup(
			manwonInput("IRP balance (만원)", &v.IRPManwon, balanceRange),
			manwonInput("Pension savings balance (만원)", &v.SavingsManwon, balanceRange),
			manwonInput("National pension at 65 (만원 per year)", &v.PensionManwon, pensionRange),
			huh.NewSelect[int]().
				Title("National pension start age").
				Options(startAgeOptions()...).
				Value(&v.PensionStartAge),
		).Title("Assets"),
	).WithTheme(huh.ThemeCharm())
}

// FormRunner is satisfied by *huh.Form.
type FormRunner interface {
	RunWithContext(ctx context.Context) error
}

// Session runs the form and prints the resulting table and chart.
type Session struct {
	Engine *calculation.CalculationEngine
	Out    io.Writer
	Form   func(*FormValues) FormRunner
}

// NewSession creates a session with the default form.
func NewSession(engine *calculation.CalculationEngine, out io.Writer) *Session {
	return &Session{
		Engine: engine,
		Out:    out,
		Form:   func(v *FormValues) FormRunner { return NewForm(v) },
	}
}

// Run collects a household from the form, simulates it and renders the results.
func (s *Session) Run(ctx context.Context, initial FormValues) (*domain.ScenarioComparison, error) {
	values := initial
	if err := s.Form(&values).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, err
	}

	household, err := values.ToSimulationConfig()
	if err != nil {
		return nil, err
	}

	name := "Interactive"
	if household.UseHousingAnnuity {
		name += " (housing annuity)"
	}
	cfg := &domain.Configuration{Scenarios: []domain.Scenario{{Name: name, Household: household}}}
	comparison, err := s.Engine.RunScenarios(ctx, cfg)
	if err != nil {
		return nil, err
	}

	for _, f := range []output.Formatter{output.ConsoleFormatter{}, output.ChartFormatter{}} {
		data, err := f.Format(comparison)
		if err != nil {
			return nil, fmt.Errorf("%s output: %w", f.Name(), err)
		}
		if _, err := s.Out.Write(append(data, '\n')); err != nil {
			return nil, err
		}
	}
	return comparison, nil
}
