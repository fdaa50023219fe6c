package domain

// Configuration holds the defaults the CLI applies when flags are not given
type Configuration struct {
	Number  NumberDefaults `yaml:"number" json:"number"`
	Output  OutputSettings `yaml:"output" json:"output"`
	Logging LogSettings    `yaml:"logging" json:"logging"`
}

// NumberDefaults controls how numbers are rounded and displayed
type NumberDefaults struct {
	DecimalPlaces      int    `yaml:"decimal_places" json:"decimal_places"`
	ThousandsSeparator bool   `yaml:"thousands_separator" json:"thousands_separator"`
	CurrencySymbol     string `yaml:"currency_symbol" json:"currency_symbol"`
}

// OutputSettings selects the result formatter
type OutputSettings struct {
	Format string `yaml:"format" json:"format"`
}

// LogSettings configures the CLI logger
type LogSettings struct {
	Level string `yaml:"level" json:"level"`
}

// DefaultConfiguration returns the built-in defaults; config files and
// environment variables are layered on top of it.
func DefaultConfiguration() Configuration {
	return Configuration{
		Number: NumberDefaults{
			DecimalPlaces:      2,
			ThousandsSeparator: true,
			CurrencySymbol:     "$",
		},
		Output:  OutputSettings{Format: "text"},
		Logging: LogSettings{Level: "warn"},
	}
}
