package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/textkit/pkg/logger"
)

// EnvPrefix marks the environment variables that override file settings.
const EnvPrefix = "TEXTKIT_"

// Config is the runtime configuration of the textkit CLI and server.
type Config struct {
	// Locale and Timezone are the defaults for calls that name neither.
	// Empty values defer to the process environment.
	Locale   string `yaml:"locale"`
	Timezone string `yaml:"timezone"`

	// Catalogs is a directory of extra interval catalogs in YAML, merged
	// over the built-in ones.
	Catalogs string `yaml:"catalogs"`

	Log    logger.Config `yaml:"log"`
	Server Server        `yaml:"server"`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	// CacheSize bounds the compiled-pattern cache behind /v1/text.
	CacheSize int `yaml:"cache_size"`
	// CORSOrigins may call the API from a browser; "*" allows any.
	CORSOrigins []string `yaml:"cors_origins"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Log: logger.Config{Level: "info", Format: "json"},
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			RequestTimeout:  5 * time.Second,
			MaxBodyBytes:    1 << 20,
			CacheSize:       256,
		},
	}
}

type options struct {
	file      string
	fileSet   bool
	envFiles  []string
	lookupEnv func(string) (string, bool)
	fsys      fs.FS
}

// Option configures Load.
type Option func(*options)

// WithFile reads YAML settings from path. A missing file is an error.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
		o.fileSet = path != ""
	}
}

// WithEnvFiles reads dotenv files before the process environment, which
// takes precedence. Missing files are skipped.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.envFiles = paths }
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(o *options) {
		if lookup != nil {
			o.lookupEnv = lookup
		}
	}
}

// WithFS resolves files in fsys instead of the operating system.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// DefaultFile is read when present and no file was named.
const DefaultFile = "textkit.yaml"

// Load layers defaults, the YAML file, dotenv files and TEXTKIT_*
// environment variables, in that order, and validates the result.
func Load(opts ...Option) (Config, error) {
	o := &options{
		file:      DefaultFile,
		envFiles:  []string{".env"},
		lookupEnv: os.LookupEnv,
		fsys:      os.DirFS("."),
	}
	for _, opt := range opts {
		opt(o)
	}

	cfg := Default()

	if err := o.readYAML(&cfg); err != nil {
		return Config{}, err
	}

	env, err := o.environment()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (o *options) read(path string) ([]byte, error) {
	if filepath.IsAbs(path) {
		return os.ReadFile(path)
	}
	return fs.ReadFile(o.fsys, path)
}

func (o *options) readYAML(cfg *Config) error {
	if o.file == "" {
		return nil
	}
	data, err := o.read(o.file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !o.fileSet {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrReadFile, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrParseFile, o.file, err)
	}
	return nil
}

// environment merges dotenv files under the process environment.
func (o *options) environment() (func(string) (string, bool), error) {
	dotenv := map[string]string{}
	for _, path := range o.envFiles {
		data, err := o.read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrReadFile, err)
		}
		vars, err := godotenv.UnmarshalBytes(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrParseFile, path, err)
		}
		maps.Copy(dotenv, vars)
	}

	return func(key string) (string, bool) {
		if v, ok := o.lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LOCALE":             &c.Locale,
		"TIMEZONE":           &c.Timezone,
		"CATALOGS":           &c.Catalogs,
		"LOG_LEVEL":          &c.Log.Level,
		"LOG_FORMAT":         &c.Log.Format,
		"SENTRY_DSN":         &c.Log.Sentry.DSN,
		"SENTRY_ENVIRONMENT": &c.Log.Sentry.Environment,
		"SENTRY_RELEASE":     &c.Log.Sentry.Release,
		"SENTRY_MIN_LEVEL":   &c.Log.Sentry.MinLevel,
		"ADDR":               &c.Server.Addr,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"READ_TIMEOUT":     &c.Server.ReadTimeout,
		"WRITE_TIMEOUT":    &c.Server.WriteTimeout,
		"SHUTDOWN_TIMEOUT": &c.Server.ShutdownTimeout,
		"REQUEST_TIMEOUT":  &c.Server.RequestTimeout,
	}
	for name, dst := range durations {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, EnvPrefix, name, v)
		}
		*dst = d
	}

	if v, ok := lookup(EnvPrefix + "CORS_ORIGINS"); ok {
		c.Server.CORSOrigins = nil
		for o := range strings.SplitSeq(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.Server.CORSOrigins = append(c.Server.CORSOrigins, o)
			}
		}
	}

	if v, ok := lookup(EnvPrefix + "MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sMAX_BODY_BYTES=%q", ErrInvalidValue, EnvPrefix, v)
		}
		c.Server.MaxBodyBytes = n
	}
	if v, ok := lookup(EnvPrefix + "CACHE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sCACHE_SIZE=%q", ErrInvalidValue, EnvPrefix, v)
		}
		c.Server.CacheSize = n
	}
	return nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.Locale != "" {
		if _, err := language.Parse(strings.ReplaceAll(c.Locale, "_", "-")); err != nil {
			return fmt.Errorf("%w: locale %q", ErrInvalidValue, c.Locale)
		}
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("%w: timezone %q", ErrInvalidValue, c.Timezone)
		}
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidValue, c.Log.Format)
	}

	s := c.Server
	switch {
	case s.Addr == "":
		return fmt.Errorf("%w: server addr is empty", ErrInvalidValue)
	case s.ReadTimeout <= 0, s.WriteTimeout <= 0, s.ShutdownTimeout <= 0, s.RequestTimeout <= 0:
		return fmt.Errorf("%w: server timeouts must be positive", ErrInvalidValue)
	case s.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalidValue)
	case s.CacheSize <= 0:
		return fmt.Errorf("%w: cache size must be positive", ErrInvalidValue)
	}
	return nil
}
