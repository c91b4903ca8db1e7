package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: \"Baseline\"\n" +
		"    household:\n" +
		"      target_annual_spending: 48000000\n" +
		"      return_rate: 0.03\n" +
		"      property_value: 900000000\n" +
		"      use_housing_annuity: false\n" +
		"      irp_balance: 250000000\n" +
		"      savings_balance: 150000000\n" +
		"      national_pension_amount: 18000000\n" +
		"      national_pension_start_age: 65\n" +
		"output:\n" +
		"  format: csv\n"

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 1)

	h := config.Scenarios[0].Household
	assert.Equal(t, "Baseline", config.Scenarios[0].Name)
	assert.True(t, h.TargetAnnualSpending.Equal(decimal.NewFromInt(48_000_000)))
	assert.True(t, h.ReturnRate.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, h.PropertyValue.Equal(decimal.NewFromInt(900_000_000)))
	assert.Equal(t, 65, h.NationalPensionStartAge)
	assert.Equal(t, "csv", config.Output.Format)
	assert.Nil(t, config.Rules.SavingsAnnualCap)
}

func TestLoadFromFile_TOML(t *testing.T) {
	testConfig := `
[rules]
savings_annual_cap = 12000000

[[scenarios]]
name = "Housing"

[scenarios.household]
target_annual_spending = 48000000
return_rate = 0.03
property_value = 900000000
use_housing_annuity = true
irp_balance = 250000000
savings_balance = 150000000
national_pension_amount = 18000000
national_pension_start_age = 67
`
	path := filepath.Join(t.TempDir(), "plan.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 1)

	h := config.Scenarios[0].Household
	assert.True(t, h.UseHousingAnnuity)
	assert.Equal(t, 67, h.NationalPensionStartAge)
	assert.True(t, h.IRPBalance.Equal(decimal.NewFromInt(250_000_000)))
	require.NotNil(t, config.Rules.SavingsAnnualCap)
	assert.True(t, config.Rules.SavingsAnnualCap.Equal(decimal.NewFromInt(12_000_000)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("nonexistent.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios: [\n  - name: x\n"), 0644))

	_, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[scenarios]\nname = "), 0644))

	_, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: \"Too young\"\n" +
		"    household:\n" +
		"      national_pension_start_age: 58\n"
	path := filepath.Join(t.TempDir(), "plan.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "national_pension_start_age")
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := NewInputParser()
	config := createValidTestConfiguration()

	err := parser.ValidateConfiguration(config)
	assert.NoError(t, err)
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	parser := NewInputParser()
	config := createValidTestConfiguration()
	config.Scenarios = nil

	err := parser.ValidateConfiguration(config)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "no scenarios provided")
}

func TestValidateConfiguration_DuplicateNames(t *testing.T) {
	parser := NewInputParser()
	config := createValidTestConfiguration()
	config.Scenarios = append(config.Scenarios, config.Scenarios[0])

	err := parser.ValidateConfiguration(config)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "duplicate scenario name")
}

func TestValidateConfiguration_NegativeRule(t *testing.T) {
	parser := NewInputParser()
	config := createValidTestConfiguration()
	negative := decimal.NewFromInt(-1)
	config.Rules.PointValue = &negative

	err := parser.ValidateConfiguration(config)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "rules.point_value")
}

func TestValidateConfiguration_SurchargeAboveOne(t *testing.T) {
	parser := NewInputParser()
	config := createValidTestConfiguration()
	surcharge := decimal.RequireFromString("1.5")
	config.Rules.SurchargeRate = &surcharge

	err := parser.ValidateConfiguration(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surcharge_rate")
}

func TestValidateConfiguration_ZeroPropertyPointsUnit(t *testing.T) {
	parser := NewInputParser()
	config := createValidTestConfiguration()
	zero := decimal.Zero
	config.Rules.PropertyPointsUnit = &zero

	err := parser.ValidateConfiguration(config)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "rules.property_points_unit must be positive")
}

func TestLoadFromFile_ExplicitZeroRuleIsKept(t *testing.T) {
	for name, body := range map[string]string{
		"plan.toml": "[rules]\nsurcharge_rate = 0\nlate_claim_bonus_rate = 0\n\n[[scenarios]]\nname = \"Baseline\"\n\n[scenarios.household]\ntarget_annual_spending = 48000000\nreturn_rate = 0.03\nnational_pension_amount = 18000000\nnational_pension_start_age = 68\n",
		"plan.yaml": "rules:\n  surcharge_rate: 0\n  late_claim_bonus_rate: 0\nscenarios:\n  - name: Baseline\n    household:\n      target_annual_spending: 48000000\n      return_rate: 0.03\n      national_pension_amount: 18000000\n      national_pension_start_age: 68\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			config, err := NewInputParser().LoadFromFile(path)
			require.NoError(t, err)
			require.NotNil(t, config.Rules.SurchargeRate)
			assert.True(t, config.Rules.SurchargeRate.IsZero())
			assert.Nil(t, config.Rules.PointValue)

			rules := config.Rules.Apply(domain.DefaultPolicyRules())
			assert.True(t, rules.SurchargeRate.IsZero())
			assert.True(t, rules.LateClaimBonusRate.IsZero())
			assert.True(t, rules.PointValue.Equal(decimal.NewFromInt(2400)))
		})
	}
}

func TestValidateScenario_EmptyName(t *testing.T) {
	parser := NewInputParser()
	scenario := domain.Scenario{Name: "  ", Household: DefaultHousehold()}

	err := parser.validateScenario(&scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario name is required")
}

func TestValidateHousehold(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(h *domain.SimulationConfig)
		wantErr string
	}{
		{"defaults", func(h *domain.SimulationConfig) {}, ""},
		{"zero return", func(h *domain.SimulationConfig) { h.ReturnRate = decimal.Zero }, ""},
		{"ten percent return", func(h *domain.SimulationConfig) { h.ReturnRate = decimal.RequireFromString("0.10") }, ""},
		{"return above range", func(h *domain.SimulationConfig) { h.ReturnRate = decimal.RequireFromString("0.11") }, "return_rate"},
		{"negative return", func(h *domain.SimulationConfig) { h.ReturnRate = decimal.RequireFromString("-0.01") }, "return_rate"},
		{"negative savings", func(h *domain.SimulationConfig) { h.SavingsBalance = decimal.NewFromInt(-1) }, "savings_balance"},
		{"start age 71", func(h *domain.SimulationConfig) { h.NationalPensionStartAge = 71 }, "national_pension_start_age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := DefaultHousehold()
			tt.mutate(&h)
			err := ValidateHousehold(h)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NotNil(t, config)
	require.Len(t, config.Scenarios, 3)
	assert.Equal(t, "Baseline", config.Scenarios[0].Name)
	assert.False(t, config.Scenarios[0].Household.UseHousingAnnuity)
	assert.True(t, config.Scenarios[1].Household.UseHousingAnnuity)
	assert.Equal(t, 68, config.Scenarios[2].Household.NationalPensionStartAge)
	assert.True(t, config.Scenarios[0].Household.TargetAnnualSpending.Equal(decimal.NewFromInt(48_000_000)))

	assert.NoError(t, parser.ValidateConfiguration(config))
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := parser.CreateExampleConfiguration()

	for _, name := range []string{"plan.yaml", "plan.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveConfiguration(original, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			require.Len(t, loaded.Scenarios, len(original.Scenarios))
			for i := range original.Scenarios {
				want := original.Scenarios[i].Household
				got := loaded.Scenarios[i].Household
				assert.Equal(t, original.Scenarios[i].Name, loaded.Scenarios[i].Name)
				assert.True(t, want.ReturnRate.Equal(got.ReturnRate))
				assert.True(t, want.PropertyValue.Equal(got.PropertyValue))
				assert.Equal(t, want.UseHousingAnnuity, got.UseHousingAnnuity)
				assert.Equal(t, want.NationalPensionStartAge, got.NationalPensionStartAge)
			}
		})
	}
}

func createValidTestConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Household: DefaultHousehold()},
		},
	}
}
