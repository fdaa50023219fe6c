package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/lski/toolbox/internal/apperrors"
	"github.com/lski/toolbox/internal/config"
	"github.com/lski/toolbox/internal/domain"
	"github.com/lski/toolbox/internal/logging"
	"github.com/lski/toolbox/internal/output"
	"github.com/spf13/cobra"
)

// app carries the state shared by every command of one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	// Global flags
	configPath string
	format     string
	logLevel   string

	config *domain.Configuration
	log    logging.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, log: logging.NopLogger{}}

	rootCmd := &cobra.Command{
		Use:   "toolbox",
		Short: "Number, date, URL and string helpers for the shell",
		Long: `toolbox exposes small formatting helpers as commands.

Values are taken from the arguments, or one per line from stdin when no
arguments are given. Results are printed as text, json, csv or yaml.
Put -- before negative numbers so they are not read as flags.

Example:
  toolbox number format --places 2 -- 1234.5 -7
  echo '$1,234.56' | toolbox number unformat`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML or JSON config file")
	pf.StringVarP(&a.format, "output", "o", "", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		a.numberCmd(),
		a.dateCmd(),
		a.urlCmd(),
		a.stringCmd(),
		a.listCmd(),
		a.keysCmd(),
	)
	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewInputParser().Load(a.configPath)
	if err != nil {
		return apperrors.ConfigError{Cause: err}
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = a.format
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return apperrors.ConfigError{Cause: err}
	}

	log, err := logging.New(a.stderr, cfg.Logging.Level)
	if err != nil {
		return apperrors.ConfigError{Cause: err}
	}
	a.config = cfg
	a.log = log
	a.log.Debugf("config loaded: places=%d separator=%t output=%s", cfg.Number.DecimalPlaces, cfg.Number.ThousandsSeparator, cfg.Output.Format)
	return nil
}

// inputs returns args, or the non-empty lines of stdin when args is empty.
func (a *app) inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(a.stdin)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

// each runs fn over every input and renders the collected batch.
func (a *app) each(op string, args []string, fn func(in string) domain.Result) error {
	values, err := a.inputs(args)
	if err != nil {
		return err
	}
	batch := &domain.Batch{Operation: op}
	for _, v := range values {
		r := fn(v)
		r.Input = v
		if !r.OK {
			a.log.Warnf("%s: %s", op, r.Error)
		}
		batch.Add(r)
	}
	return a.render(batch)
}

func (a *app) render(batch *domain.Batch) error {
	if err := output.Render(a.stdout, batch, a.config.Output.Format); err != nil {
		return err
	}
	if n := batch.Failed(); n > 0 {
		return apperrors.InputError(n, len(batch.Results))
	}
	return nil
}

func okResult(out string) domain.Result { return domain.Result{Output: out, OK: true} }

func failed(err error) domain.Result { return domain.Result{Error: err.Error()} }
