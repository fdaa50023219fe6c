package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/lski/toolbox/internal/domain"
	"github.com/lski/toolbox/internal/output"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// MaxDecimalPlaces bounds the decimal_places setting.
const MaxDecimalPlaces = 20

// InputParser handles parsing of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// Load returns the defaults, overlaid with filename when it is not empty and
// then with TOOLBOX_* environment variables, and validates the result.
func (ip *InputParser) Load(filename string) (*domain.Configuration, error) {
	var config *domain.Configuration
	if filename == "" {
		cfg := domain.DefaultConfiguration()
		config = &cfg
	} else {
		var err error
		if config, err = ip.decodeFile(filename); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(config); err != nil {
		return nil, fmt.Errorf("environment override failed: %w", err)
	}
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// LoadFromFile loads configuration from a YAML or JSON file. Keys missing from
// the file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	config, err := ip.decodeFile(filename)
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (ip *InputParser) decodeFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := domain.DefaultConfiguration()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateNumber(&config.Number); err != nil {
		return fmt.Errorf("number settings: %w", err)
	}

	if output.GetFormatterByName(config.Output.Format) == nil {
		return fmt.Errorf("output format %q is not one of %s", config.Output.Format, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	if _, err := zapcore.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("logging level: %w", err)
	}

	return nil
}

// validateNumber validates the number formatting defaults
func (ip *InputParser) validateNumber(n *domain.NumberDefaults) error {
	if n.DecimalPlaces < 0 || n.DecimalPlaces > MaxDecimalPlaces {
		return fmt.Errorf("decimal places must be between 0 and %d", MaxDecimalPlaces)
	}
	if strings.ContainsAny(n.CurrencySymbol, "0123456789.-") {
		return fmt.Errorf("currency symbol %q must not contain digits, '.' or '-'", n.CurrencySymbol)
	}
	return nil
}
