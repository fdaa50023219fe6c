package main

import (
	"errors"

	"github.com/lski/toolbox/internal/domain"
	"github.com/lski/toolbox/pkg/stringutil"
	"github.com/spf13/cobra"
)

var errInvalidEmail = errors.New("not an e-mail address")

func (a *app) stringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "string",
		Short: "Shorten, check and escape text",
	}

	var (
		maxSize int
		dots    bool
	)
	shrinkCmd := &cobra.Command{
		Use:   "shrink [text...]",
		Short: "Cut text to a maximum number of characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each("shrink", args, func(in string) domain.Result {
				return okResult(stringutil.Shrink(in, maxSize, dots))
			})
		},
	}
	shrinkCmd.Flags().IntVarP(&maxSize, "max", "m", 20, "maximum length in characters")
	shrinkCmd.Flags().BoolVar(&dots, "dots", true, "end truncated text with ...")

	emailCmd := &cobra.Command{
		Use:   "email [address...]",
		Short: "Check that values look like e-mail addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each("email", args, func(in string) domain.Result {
				if !stringutil.IsValidEmail(in) {
					return failed(errInvalidEmail)
				}
				return okResult(in)
			})
		},
	}

	cmd.AddCommand(
		shrinkCmd,
		emailCmd,
		a.mapCmd("title", "Capitalise the first letter of every word", stringutil.TitleCase),
		a.mapCmd("escape", "Replace & < and > with HTML entities", stringutil.HTMLEntities),
		a.mapCmd("unescape", "Turn HTML entities back into characters", stringutil.StripHTMLEntities),
	)
	return cmd
}

// mapCmd builds a command that applies fn to every input.
func (a *app) mapCmd(name, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(name, args, func(in string) domain.Result {
				return okResult(fn(in))
			})
		},
	}
}
