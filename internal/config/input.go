package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Bounds enforced on input files, matching the ranges of the interactive controls.
var (
	MinReturnRate = decimal.Zero
	MaxReturnRate = decimal.NewFromFloat(0.10)
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML, JSON or TOML file.
// The format is chosen by file extension; anything other than .toml is read as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, formatForPath(filename))
}

// Parse decodes and validates configuration data in the given format ("yaml" or "toml").
func (ip *InputParser) Parse(data []byte, format string) (*domain.Configuration, error) {
	var config domain.Configuration
	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios provided", domain.ErrInvalidInput)
	}

	if err := ip.validateRules(&config.Rules); err != nil {
		return fmt.Errorf("rules validation failed: %w", err)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("%w: duplicate scenario name %q", domain.ErrInvalidInput, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateRules rejects negative rule overrides. Omitted rules keep their defaults.
func (ip *InputParser) validateRules(rules *domain.RuleOverrides) error {
	var resolved domain.PolicyRules
	for _, f := range rules.Fields(&resolved) {
		if f.Value != nil && f.Value.IsNegative() {
			return fmt.Errorf("%w: rules.%s cannot be negative", domain.ErrInvalidInput, f.Key)
		}
	}
	if rules.PropertyPointsUnit != nil && rules.PropertyPointsUnit.IsZero() {
		return fmt.Errorf("%w: rules.property_points_unit must be positive", domain.ErrInvalidInput)
	}
	if rules.SurchargeRate != nil && rules.SurchargeRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: rules.surcharge_rate must be at most 1", domain.ErrInvalidInput)
	}
	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("%w: scenario name is required", domain.ErrInvalidInput)
	}
	return ValidateHousehold(scenario.Household)
}

// ValidateHousehold applies the simulator's own checks plus the input boundary's
// return-rate range.
func ValidateHousehold(h domain.SimulationConfig) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if h.ReturnRate.LessThan(MinReturnRate) || h.ReturnRate.GreaterThan(MaxReturnRate) {
		return fmt.Errorf("%w: return_rate must be between %s and %s (got %s)",
			domain.ErrInvalidInput, MinReturnRate.String(), MaxReturnRate.String(), h.ReturnRate.String())
	}
	return nil
}

// DefaultHousehold returns the household the planner starts from, the same
// defaults the interactive form offers (entered there in 만원).
func DefaultHousehold() domain.SimulationConfig {
	return domain.SimulationConfig{
		TargetAnnualSpending:    decimal.NewFromInt(48_000_000),
		ReturnRate:              decimal.NewFromFloat(0.03),
		PropertyValue:           decimal.NewFromInt(900_000_000),
		UseHousingAnnuity:       false,
		IRPBalance:              decimal.NewFromInt(250_000_000),
		SavingsBalance:          decimal.NewFromInt(150_000_000),
		NationalPensionAmount:   decimal.NewFromInt(18_000_000),
		NationalPensionStartAge: 65,
	}
}

// CreateExampleConfiguration creates an example configuration with three scenarios
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	withHousing := DefaultHousehold()
	withHousing.UseHousingAnnuity = true

	deferred := DefaultHousehold()
	deferred.NationalPensionStartAge = 68

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:        "Baseline",
				Description: "Pension at 65, savings and IRP only",
				Household:   DefaultHousehold(),
			},
			{
				Name:        "Housing Annuity",
				Description: "Baseline plus a housing annuity on the home",
				Household:   withHousing,
			},
			{
				Name:        "Deferred Pension",
				Description: "National pension deferred to 68",
				Household:   deferred,
			},
		},
		Output: domain.OutputSettings{
			Format:    "console",
			Directory: ".",
		},
	}
}

// SaveConfiguration writes a configuration as YAML, or TOML when the filename ends in .toml.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var data []byte
	switch formatForPath(filename) {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		b, err := yaml.Marshal(config)
		if err != nil {
			return err
		}
		data = b
	}
	return os.WriteFile(filename, data, 0644)
}

func formatForPath(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		return "toml"
	}
	return "yaml"
}
