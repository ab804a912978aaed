package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/internal/render"
)

func newFormatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format numbers, dates and intervals for a locale",
	}
	cmd.AddCommand(newFormatNumberCmd(a), newFormatTimeCmd(a))
	return cmd
}

func newFormatNumberCmd(a *app) *cobra.Command {
	var (
		req       render.NumberRequest
		precision int
	)

	cmd := &cobra.Command{
		Use:   "number <value>",
		Short: "Format a number",
		Long:  "Format a number. Styles: " + strings.Join(render.NumberStyles, ", ") + ".",
		Example: `  textkit format number 1234.5 --style decimal --precision 2 -l de
  textkit format number 9.5 --style currency --currency EUR
  textkit format number 42 --style spellout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", args[0])
			}
			req.Value = v
			if cmd.Flags().Changed("precision") {
				req.Precision = &precision
			}

			out, err := a.render.Number(req, "")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&req.Style, "style", "number", "output style")
	fl.IntVar(&precision, "precision", -1, "fraction digits")
	fl.StringVar(&req.Unit, "unit", "", "unit appended by the number style")
	fl.StringVar(&req.Currency, "currency", "", "ISO 4217 code for the currency style")
	fl.BoolVar(&req.Rounded, "rounded", false, "currency without fraction digits")
	fl.Float64Var(&req.Total, "total", 1, "denominator for the percent style")
	fl.StringVar(&req.Pattern, "pattern", "", "pattern for the pattern style, e.g. #,##0.00")
	fl.BoolVar(&req.Invert, "invert", false, "diff: treat growth as bad")
	return cmd
}

func newFormatTimeCmd(a *app) *cobra.Command {
	var (
		req render.TimeRequest
		to  string
	)

	cmd := &cobra.Command{
		Use:   "time [RFC3339|now]",
		Short: "Format an instant or the interval to it",
		Long:  "Format an instant, default now. Styles: " + strings.Join(render.TimeStyles, ", ") + ".",
		Example: `  textkit format time 2024-03-02T14:05:09Z --date long -l fr
  textkit format time 2024-01-01T00:00:00Z --style since --parts 2
  textkit format time 2024-01-01T00:00:00Z --style between --to 2024-03-01T00:00:00Z`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := "now"
			if len(args) == 1 {
				arg = args[0]
			}
			t, err := parseTime(arg, a.clock)
			if err != nil {
				return err
			}
			req.Time = t

			if to != "" {
				t, err := parseTime(to, a.clock)
				if err != nil {
					return err
				}
				req.To = &t
			}

			out, err := a.render.Time(req, "")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&req.Style, "style", "locale", "output style")
	fl.StringVar(&req.Date, "date", "", "date size: none, short, medium, long or full")
	fl.StringVar(&req.Clock, "clock", "", "time size: none, short, medium, long or full")
	fl.StringVar(&req.Layout, "layout", "", "Go layout for the layout and pattern styles")
	fl.StringVar(&to, "to", "", "end instant for the between styles")
	fl.IntVar(&req.Parts, "parts", 1, "interval units to show")
	fl.StringVar(&req.Timezone, "tz", "", "timezone to render in, or \"keep\"")
	return cmd
}

func parseTime(s string, now func() time.Time) (time.Time, error) {
	if strings.EqualFold(s, "now") {
		return now(), nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want RFC 3339, %q or %q", s, time.DateTime, time.DateOnly)
}
