package main

import (
	"strconv"

	"github.com/lski/toolbox/internal/apperrors"
	"github.com/lski/toolbox/internal/config"
	"github.com/lski/toolbox/internal/domain"
	"github.com/lski/toolbox/pkg/number"
	"github.com/spf13/cobra"
)

// numberFlags are shared by the number subcommands; unset flags fall back to
// the configuration.
type numberFlags struct {
	places    int
	separator bool
	symbol    string
}

func (a *app) numberCmd() *cobra.Command {
	var nf numberFlags

	cmd := &cobra.Command{
		Use:   "number",
		Short: "Round, format and unformat numbers",
	}

	roundCmd := &cobra.Command{
		Use:   "round [value...]",
		Short: "Round values half away from zero",
		RunE: func(cmd *cobra.Command, args []string) error {
			places, err := a.places(cmd, nf.places)
			if err != nil {
				return err
			}
			return a.each("round", args, func(in string) domain.Result {
				v, ok := number.Round(in, places)
				if !ok {
					return failed(&number.ParseError{Value: in})
				}
				return okResult(strconv.FormatFloat(v, 'f', -1, 64))
			})
		},
	}

	formatCmd := &cobra.Command{
		Use:   "format [value...]",
		Short: "Format values with fixed decimals and optional thousands separators",
		Example: `  toolbox number format --places 2 1234.5      # 1,234.50
  toolbox number format --separator=false 1e6  # 1000000.00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			places, err := a.places(cmd, nf.places)
			if err != nil {
				return err
			}
			sep := a.config.Number.ThousandsSeparator
			if cmd.Flags().Changed("separator") {
				sep = nf.separator
			}
			return a.each("format", args, func(in string) domain.Result {
				s, ok := number.Format(in, places, sep)
				if !ok {
					return failed(&number.ParseError{Value: in})
				}
				return okResult(s)
			})
		},
	}

	unformatCmd := &cobra.Command{
		Use:   "unformat [text...]",
		Short: "Strip currency symbols and separators, leaving a plain number",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each("unformat", args, func(in string) domain.Result {
				return okResult(strconv.FormatFloat(number.RemoveFormatNumber(in), 'f', -1, 64))
			})
		},
	}

	sumCmd := &cobra.Command{
		Use:   "sum [amount...]",
		Short: "Add up formatted amounts such as $1,234.56",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.inputs(args)
			if err != nil {
				return err
			}
			batch := &domain.Batch{Operation: "sum"}
			amounts := make([]number.Money, 0, len(values))
			for _, v := range values {
				m := number.NewMoneyFromFormatted(v)
				amounts = append(amounts, m)
				batch.Add(domain.Result{Input: v, Output: m.String(), OK: true})
			}
			batch.Total = number.Sum(amounts...).Round().Format(a.symbol(cmd, nf.symbol))
			a.log.Debugf("sum of %d amounts: %s", len(amounts), batch.Total)
			return a.render(batch)
		},
	}

	currencyCmd := &cobra.Command{
		Use:   "currency [value...]",
		Short: "Format values as grouped two-decimal amounts behind a currency symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := a.symbol(cmd, nf.symbol)
			return a.each("currency", args, func(in string) domain.Result {
				s, ok := number.FormatCurrency(in, symbol)
				if !ok {
					return failed(&number.ParseError{Value: in})
				}
				return okResult(s)
			})
		},
	}

	percentCmd := &cobra.Command{
		Use:   "percent [value...]",
		Short: "Format values as percentages",
		RunE: func(cmd *cobra.Command, args []string) error {
			places, err := a.places(cmd, nf.places)
			if err != nil {
				return err
			}
			return a.each("percent", args, func(in string) domain.Result {
				s, ok := number.FormatPercentage(in, places)
				if !ok {
					return failed(&number.ParseError{Value: in})
				}
				return okResult(s)
			})
		},
	}

	for _, c := range []*cobra.Command{roundCmd, formatCmd, percentCmd} {
		c.Flags().IntVarP(&nf.places, "places", "p", 2, "decimal places (default from config)")
	}
	formatCmd.Flags().BoolVar(&nf.separator, "separator", true, "group the integer part in thousands (default from config)")
	for _, c := range []*cobra.Command{sumCmd, currencyCmd} {
		c.Flags().StringVar(&nf.symbol, "symbol", "", "currency symbol (default from config)")
	}

	cmd.AddCommand(roundCmd, formatCmd, unformatCmd, sumCmd, currencyCmd, percentCmd)
	return cmd
}

// places returns the --places flag when given, checked against the same range
// as the decimal_places setting, or the configured default.
func (a *app) places(cmd *cobra.Command, flagValue int) (int, error) {
	if !cmd.Flags().Changed("places") {
		return a.config.Number.DecimalPlaces, nil
	}
	if flagValue < 0 || flagValue > config.MaxDecimalPlaces {
		return 0, apperrors.NewConfigError("--places must be between 0 and %d, got %d", config.MaxDecimalPlaces, flagValue)
	}
	return flagValue, nil
}

func (a *app) symbol(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("symbol") {
		return flagValue
	}
	return a.config.Number.CurrencySymbol
}
