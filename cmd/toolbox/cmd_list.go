package main

import (
	"strconv"
	"strings"

	"github.com/lski/toolbox/internal/domain"
	"github.com/lski/toolbox/pkg/keys"
	"github.com/lski/toolbox/pkg/number"
	"github.com/lski/toolbox/pkg/sliceutil"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Sort and de-duplicate lists of values",
	}

	sortCmd := &cobra.Command{
		Use:   "sort [number...]",
		Short: "Sort numbers in ascending order",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.inputs(args)
			if err != nil {
				return err
			}
			batch := &domain.Batch{Operation: "sort"}
			nums := make([]float64, 0, len(values))
			for _, v := range values {
				d, err := number.Parse(v)
				if err != nil {
					batch.Add(domain.Result{Input: v, Error: err.Error()})
					continue
				}
				f, _ := d.Float64()
				nums = append(nums, f)
			}
			for _, f := range sliceutil.SortNumbers(nums) {
				batch.Add(okResult(strconv.FormatFloat(f, 'f', -1, 64)))
			}
			return a.render(batch)
		},
	}

	uniqueCmd := &cobra.Command{
		Use:   "unique [value...]",
		Short: "Print each distinct value once, sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.inputs(args)
			if err != nil {
				return err
			}
			batch := &domain.Batch{Operation: "unique"}
			for _, v := range sliceutil.Unique(values) {
				batch.Add(okResult(v))
			}
			return a.render(batch)
		},
	}

	cmd.AddCommand(sortCmd, uniqueCmd)
	return cmd
}

func (a *app) keysCmd() *cobra.Command {
	var allowSpaces bool
	cmd := &cobra.Command{
		Use:   "keys [code...]",
		Short: "Report which key codes a numeric input field accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each("keys", args, func(in string) domain.Result {
				code, err := strconv.Atoi(strings.TrimSpace(in))
				if err != nil {
					return failed(&number.ParseError{Value: in})
				}
				return okResult(strconv.FormatBool(keys.NumericsOnly(code, allowSpaces)))
			})
		},
	}
	cmd.Flags().BoolVar(&allowSpaces, "allow-spaces", false, "accept the space bar")
	return cmd
}
