package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lski/toolbox/internal/domain"
)

// EnvPrefix is prepended to every environment variable the CLI reads.
const EnvPrefix = "TOOLBOX_"

// ApplyEnv overrides config with any TOOLBOX_* variables that are set.
// Malformed numeric or boolean values are reported rather than ignored.
func ApplyEnv(config *domain.Configuration) error {
	if val, ok := lookupEnv("DECIMAL_PLACES"); ok {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%sDECIMAL_PLACES: %w", EnvPrefix, err)
		}
		config.Number.DecimalPlaces = n
	}
	if val, ok := lookupEnv("THOUSANDS_SEPARATOR"); ok {
		b, err := parseBool(val)
		if err != nil {
			return fmt.Errorf("%sTHOUSANDS_SEPARATOR: %w", EnvPrefix, err)
		}
		config.Number.ThousandsSeparator = b
	}
	if val, ok := lookupEnv("CURRENCY_SYMBOL"); ok {
		config.Number.CurrencySymbol = val
	}
	if val, ok := lookupEnv("OUTPUT"); ok {
		config.Output.Format = val
	}
	if val, ok := lookupEnv("LOG_LEVEL"); ok {
		config.Logging.Level = val
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	val, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || strings.TrimSpace(val) == "" {
		return "", false
	}
	return strings.TrimSpace(val), true
}

// parseBool accepts "true", "1", "yes" as true and "false", "0", "no" as false (case-insensitive).
func parseBool(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", val)
}
