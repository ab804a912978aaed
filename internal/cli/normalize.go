package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/pkg/normalize"
	"github.com/dmitrymomot/textkit/pkg/slug"
)

type normalizeFlags struct {
	separator   string
	allowed     string
	language    string
	maxLength   int
	lowercase   bool
	extendShort bool
	allowSpaces bool
	length      int
	rtl         bool
	list        bool
}

func (f normalizeFlags) options(cmd *cobra.Command) normalize.Options {
	var opts []slug.Option
	if cmd.Flags().Changed("separator") {
		opts = append(opts, slug.Separator(f.separator))
	}
	if cmd.Flags().Changed("lowercase") {
		opts = append(opts, slug.Lowercase(f.lowercase))
	}
	if f.allowed != "" {
		opts = append(opts, slug.AllowedChars(f.allowed))
	}
	if f.language != "" {
		opts = append(opts, slug.Language(f.language))
	}
	if f.maxLength > 0 {
		opts = append(opts, slug.MaxLength(f.maxLength))
	}
	return normalize.Options{
		Slug:          opts,
		NoExtendShort: !f.extendShort,
		AllowSpaces:   f.allowSpaces,
		Length:        f.length,
		RTL:           f.rtl,
	}
}

func newNormalizeCmd(a *app) *cobra.Command {
	var f normalizeFlags

	cmd := &cobra.Command{
		Use:   "normalize <pipeline> [value...]",
		Short: "Run a normalization pipeline",
		Long: `Run a normalization pipeline such as slug, camel, constant or initials.

The value is the remaining arguments joined by spaces. Without a value every
line of standard input is normalized. A null result prints an empty line.`,
		Example: `  textkit normalize slug "Hello World!"
  textkit normalize initials --extend-short=false john
  textkit normalize slug --allowed-chars . "v1.2 release notes"
  cat names.txt | textkit normalize first-name`,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.list {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if f.list {
				for _, name := range normalize.Pipelines() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			name := args[0]
			if _, ok := normalize.Lookup(name); !ok {
				return fmt.Errorf("%w: %q (see --list)", normalize.ErrUnknownPipeline, name)
			}
			opts := f.options(cmd)

			run := func(value string) error {
				res, ok, err := normalize.Run(name, normalize.String(value), opts)
				if err != nil {
					return err
				}
				if !ok {
					res = ""
				}
				_, err = fmt.Fprintln(out, res)
				return err
			}

			if len(args) > 1 {
				return run(strings.Join(args[1:], " "))
			}
			return eachLine(cmd.InOrStdin(), run)
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.list, "list", false, "list pipeline names and exit")
	fl.StringVar(&f.separator, "separator", "-", "slug word separator")
	fl.BoolVar(&f.lowercase, "lowercase", true, "lowercase slugs")
	fl.StringVar(&f.allowed, "allowed-chars", "", "extra characters slugs may keep")
	fl.StringVar(&f.language, "language", "", "transliteration language for slugs")
	fl.IntVar(&f.maxLength, "max-length", 0, "truncate slugs to this many characters")
	fl.BoolVar(&f.extendShort, "extend-short", true, "initials: use two letters for a single name")
	fl.BoolVar(&f.allowSpaces, "allow-spaces", false, "fileName: keep spaces")
	fl.IntVar(&f.length, "length", 10, "shorten: target length")
	fl.BoolVar(&f.rtl, "rtl", false, "shorten: keep the end instead of the start")
	return cmd
}

func eachLine(r io.Reader, fn func(string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
