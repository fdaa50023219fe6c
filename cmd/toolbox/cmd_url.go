package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lski/toolbox/internal/domain"
	"github.com/lski/toolbox/pkg/urlutil"
	"github.com/spf13/cobra"
)

func (a *app) urlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Read and build query strings",
	}

	paramsCmd := &cobra.Command{
		Use:   "params URL",
		Short: "List the query parameters of a URL or query string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := urlutil.Params(args[0])
			if strings.Contains(args[0], "?") {
				var err error
				if params, err = urlutil.ParamsFromURL(args[0]); err != nil {
					return err
				}
			}
			batch := &domain.Batch{Operation: "params"}
			names := make([]string, 0, len(params))
			for k := range params {
				names = append(names, k)
			}
			slices.Sort(names)
			for _, k := range names {
				batch.Add(domain.Result{Input: k, Output: params[k], OK: true})
			}
			return a.render(batch)
		},
	}

	encodeCmd := &cobra.Command{
		Use:   "encode KEY=VALUE...",
		Short: "Build a query string from key=value pairs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj := make(map[string]any, len(args))
			for _, arg := range args {
				k, v, ok := strings.Cut(arg, "=")
				if !ok || k == "" {
					return fmt.Errorf("expected KEY=VALUE, got %q", arg)
				}
				obj[k] = v
			}
			batch := &domain.Batch{Operation: "encode"}
			batch.Add(domain.Result{Input: strings.Join(args, " "), Output: urlutil.EncodeObject(obj), OK: true})
			return a.render(batch)
		},
	}

	cmd.AddCommand(paramsCmd, encodeCmd)
	return cmd
}
