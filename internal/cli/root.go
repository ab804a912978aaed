package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/internal/config"
	"github.com/dmitrymomot/textkit/internal/render"
	"github.com/dmitrymomot/textkit/pkg/format"
	"github.com/dmitrymomot/textkit/pkg/i18n"
	"github.com/dmitrymomot/textkit/pkg/logger"
	"github.com/dmitrymomot/textkit/pkg/text"
)

const flushTimeout = 2 * time.Second

// app holds what every command shares once configuration is loaded.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	provider  format.LocaleProvider
	catalog   *i18n.Catalog
	humanizer format.Humanizer
	render    *render.Renderer
	clock     func() time.Time
}

type globalFlags struct {
	config    string
	envFiles  []string
	locale    string
	timezone  string
	logLevel  string
	logFormat string
}

// Option configures the root command.
type Option func(*settings)

type settings struct {
	configOpts []config.Option
	clock      func() time.Time
}

// WithConfigOptions passes options to config.Load ahead of the ones
// derived from flags.
func WithConfigOptions(opts ...config.Option) Option {
	return func(s *settings) { s.configOpts = append(s.configOpts, opts...) }
}

// WithClock replaces time.Now for relative time output.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.clock = now }
}

// NewRootCmd builds the textkit command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	st := &settings{clock: time.Now}
	for _, opt := range opts {
		opt(st)
	}

	var (
		flags globalFlags
		a     = &app{clock: st.clock}
	)

	root := &cobra.Command{
		Use:   "textkit",
		Short: "Normalize, transliterate and format text",
		Long: `textkit normalizes identifiers and names, transliterates to ASCII,
converts between number bases and renders numbers, dates and intervals
in the conventions of a locale.

Settings come from textkit.yaml, .env files and TEXTKIT_* variables;
flags override all of them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags, st.configOpts)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.cfg.Log.Sentry.DSN != "" {
				logger.Flush(flushTimeout)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "YAML config file (default ./"+config.DefaultFile+" when present)")
	pf.StringSliceVar(&flags.envFiles, "env-file", []string{".env"}, "dotenv files read before the process environment")
	pf.StringVarP(&flags.locale, "locale", "l", "", "default locale, e.g. de-DE")
	pf.StringVar(&flags.timezone, "timezone", "", "default IANA timezone, e.g. Europe/Berlin")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&flags.logFormat, "log-format", "", "json or text")

	root.AddCommand(
		newNormalizeCmd(a),
		newConvertCmd(a),
		newTranslitCmd(a),
		newFormatCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, flags globalFlags, base []config.Option) error {
	opts := append([]config.Option{}, base...)
	if flags.config != "" {
		path, err := filepath.Abs(flags.config)
		if err != nil {
			return err
		}
		opts = append(opts, config.WithFile(path))
	}
	if cmd.Flags().Changed("env-file") {
		opts = append(opts, config.WithEnvFiles(flags.envFiles...))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	if flags.timezone != "" {
		cfg.Timezone = flags.timezone
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Log.Output == nil {
		cfg.Log.Output = cmd.ErrOrStderr()
	}

	l, err := logger.New(cfg.Log, logger.RequestIDExtractor(), logger.LocaleExtractor())
	if err != nil {
		return err
	}

	text.SetPatternCacheSize(cfg.Server.CacheSize)

	var catalogOpts []i18n.Option
	if cfg.Catalogs != "" {
		if _, err := os.Stat(cfg.Catalogs); err != nil {
			return fmt.Errorf("catalogs: %w", err)
		}
		catalogOpts = append(catalogOpts, i18n.WithYAML(os.DirFS(cfg.Catalogs)))
	}
	cat, err := format.DefaultCatalog(catalogOpts...)
	if err != nil {
		return err
	}

	provider := format.NewSystemProvider(
		format.WithDefaultLocale(cfg.Locale),
		format.WithDefaultTimezone(cfg.Timezone),
	)
	humanizer := format.NewCatalogHumanizer(cat, provider)

	a.cfg = cfg
	a.logger = l
	a.provider = provider
	a.catalog = cat
	a.humanizer = humanizer
	a.render = render.New(
		format.NewNumber(provider),
		format.NewTime(provider, format.WithHumanizer(humanizer), format.WithClock(a.clock)),
	)

	l.Debug("configuration loaded",
		slog.String("locale", provider.Locale("")),
		slog.Any("catalogs", cat.Languages()),
	)
	return nil
}
