package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/pkg/basen"
	"github.com/dmitrymomot/textkit/pkg/translit"
)

func newConvertCmd(*app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert numerals between bases and alphabetic labels",
	}

	var from, to, pad int
	base := &cobra.Command{
		Use:     "base <numeral>",
		Short:   "Convert a numeral between bases 2 and 62",
		Example: "  textkit convert base ff --from 16 --to 2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := basen.Convert(args[0], from, to, pad)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	base.Flags().IntVar(&from, "from", 10, "input base")
	base.Flags().IntVar(&to, "to", 62, "output base")
	base.Flags().IntVar(&pad, "pad", 0, "left pad the result with zeros to this width")

	alpha := &cobra.Command{
		Use:   "alpha <number|letters>",
		Short: "Convert between a number and its spreadsheet-style label",
		Long: `Convert between a non-negative number and its bijective base-26 label,
where 0 is "a", 25 is "z" and 26 is "aa". Digits convert to letters;
anything else converts its letters back to a number.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if n, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				s, err := basen.NumericToAlpha(n)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, s)
				return err
			}
			n, err := basen.AlphaToNumeric(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, n)
			return err
		},
	}

	cmd.AddCommand(base, alpha)
	return cmd
}

func newTranslitCmd(*app) *cobra.Command {
	var (
		lang string
		keep bool
		list bool
	)

	cmd := &cobra.Command{
		Use:   "translit [text...]",
		Short: "Transliterate text to ASCII",
		Long: `Transliterate text to ASCII. Without arguments every line of standard
input is transliterated.`,
		Example: `  textkit translit --lang de "Müller"
  textkit translit --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				_, err := fmt.Fprintln(out, strings.Join(translit.Languages(), "\n"))
				return err
			}
			run := func(s string) error {
				_, err := fmt.Fprintln(out, translit.ToASCII(s, lang, !keep))
				return err
			}
			if len(args) > 0 {
				return run(strings.Join(args, " "))
			}
			return eachLine(cmd.InOrStdin(), run)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "language-specific table, e.g. de or ru")
	cmd.Flags().BoolVar(&keep, "keep-unsupported", false, "keep characters without an ASCII form")
	cmd.Flags().BoolVar(&list, "list", false, "list languages with their own table")
	return cmd
}
