package main

import (
	"fmt"
	"time"

	"github.com/lski/toolbox/internal/domain"
	"github.com/lski/toolbox/pkg/aspnetjson"
	"github.com/lski/toolbox/pkg/dateutil"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func (a *app) dateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Combine, split and convert dates",
	}

	combineCmd := &cobra.Command{
		Use:   "combine DATE TIME",
		Short: "Put a time of day onto a date (YYYY-MM-DD and 14:30 or 2:30 PM)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0] + " " + args[1]
			r := combine(args[0], args[1])
			r.Input = in
			batch := &domain.Batch{Operation: "combine"}
			batch.Add(r)
			return a.render(batch)
		},
	}

	var seconds bool
	timeCmd := &cobra.Command{
		Use:   "time [timestamp...]",
		Short: "Print the time of day of RFC 3339 or /Date(ms)/ timestamps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each("time", args, func(in string) domain.Result {
				t, err := parseTimestamp(in)
				if err != nil {
					return failed(err)
				}
				return okResult(dateutil.TimeOnly(t, seconds))
			})
		},
	}
	timeCmd.Flags().BoolVarP(&seconds, "seconds", "s", false, "include seconds")

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			batch := &domain.Batch{Operation: "today"}
			batch.Add(okResult(dateutil.Today().Format(dateLayout)))
			return a.render(batch)
		},
	}

	aspnetCmd := &cobra.Command{
		Use:   "aspnet [timestamp...]",
		Short: "Convert between /Date(ms)/ and RFC 3339 timestamps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each("aspnet", args, func(in string) domain.Result {
				if t, ok := aspnetjson.ParseDate(in); ok {
					return okResult(t.Format(time.RFC3339Nano))
				}
				t, err := time.Parse(time.RFC3339Nano, in)
				if err != nil {
					return failed(fmt.Errorf("not a /Date(ms)/ or RFC 3339 timestamp: %q", in))
				}
				return okResult(aspnetjson.FormatDate(t))
			})
		},
	}

	cmd.AddCommand(combineCmd, timeCmd, todayCmd, aspnetCmd)
	return cmd
}

func combine(date, clock string) domain.Result {
	d, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return failed(fmt.Errorf("invalid date %q: %w", date, err))
	}
	t, err := dateutil.Combine(d, clock)
	if err != nil {
		return failed(err)
	}
	return okResult(t.Format("2006-01-02 15:04:05"))
}

func parseTimestamp(s string) (time.Time, error) {
	if t, ok := aspnetjson.ParseDate(s); ok {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
