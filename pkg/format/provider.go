package format

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// FallbackLocale is used when no other source names a locale.
const FallbackLocale = "en-US"

// LocaleEnv overrides the system locale for textkit.
const LocaleEnv = "TEXTKIT_LOCALE"

// LocaleProvider resolves the effective locale and timezone for a call. An
// empty explicit value asks for the default.
type LocaleProvider interface {
	Locale(explicit string) string
	Location(explicit string) (*time.Location, error)
}

// SystemProvider resolves locales in order: explicit value, configured
// default, TEXTKIT_LOCALE, LC_ALL, LANG, the operating system locale and
// finally en-US. Timezones resolve from the explicit value, the configured
// default, TZ and then time.Local.
type SystemProvider struct {
	locale   string
	timezone string
	getenv   func(string) string
	detect   func() (string, error)
}

// ProviderOption configures a SystemProvider.
type ProviderOption func(*SystemProvider)

// WithDefaultLocale sets the locale used when a call names none.
func WithDefaultLocale(locale string) ProviderOption {
	return func(p *SystemProvider) { p.locale = locale }
}

// WithDefaultTimezone sets the IANA zone used when a call names none.
func WithDefaultTimezone(tz string) ProviderOption {
	return func(p *SystemProvider) { p.timezone = tz }
}

// WithEnv replaces os.Getenv as the environment source.
func WithEnv(getenv func(string) string) ProviderOption {
	return func(p *SystemProvider) {
		if getenv != nil {
			p.getenv = getenv
		}
	}
}

// WithDetector replaces operating-system locale detection.
func WithDetector(detect func() (string, error)) ProviderOption {
	return func(p *SystemProvider) {
		if detect != nil {
			p.detect = detect
		}
	}
}

// NewSystemProvider returns a provider backed by the process environment.
func NewSystemProvider(opts ...ProviderOption) *SystemProvider {
	p := &SystemProvider{
		getenv: os.Getenv,
		detect: jibber_jabber.DetectIETF,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Locale returns the first usable locale, as a canonical BCP 47 tag.
func (p *SystemProvider) Locale(explicit string) string {
	for _, candidate := range []string{
		explicit,
		p.locale,
		p.getenv(LocaleEnv),
		p.getenv("LC_ALL"),
		p.getenv("LANG"),
	} {
		if l := normalizeLocale(candidate); l != "" {
			return l
		}
	}
	if sys, err := p.detect(); err == nil {
		if l := normalizeLocale(sys); l != "" {
			return l
		}
	}
	return FallbackLocale
}

// Location returns the first configured timezone, or time.Local.
func (p *SystemProvider) Location(explicit string) (*time.Location, error) {
	for _, candidate := range []string{explicit, p.timezone, p.getenv("TZ")} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		loc, err := time.LoadLocation(candidate)
		if err != nil {
			return nil, fail("location", "", fmt.Errorf("%w: %q", ErrInvalidTimezone, candidate))
		}
		return loc, nil
	}
	return time.Local, nil
}

// normalizeLocale turns POSIX values such as "de_DE.UTF-8@euro" into BCP 47
// tags. "C", "POSIX" and unparsable values yield "".
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return ""
	}
	tag, err := language.Parse(s)
	if err != nil || tag == language.Und {
		return ""
	}
	return tag.String()
}

// StaticProvider always answers with the same locale and location unless a
// call names its own.
type StaticProvider struct {
	Lang string
	Loc  *time.Location
}

// Locale implements LocaleProvider.
func (s StaticProvider) Locale(explicit string) string {
	if l := normalizeLocale(explicit); l != "" {
		return l
	}
	if l := normalizeLocale(s.Lang); l != "" {
		return l
	}
	return FallbackLocale
}

// Location implements LocaleProvider.
func (s StaticProvider) Location(explicit string) (*time.Location, error) {
	if explicit != "" {
		loc, err := time.LoadLocation(explicit)
		if err != nil {
			return nil, fail("location", "", fmt.Errorf("%w: %q", ErrInvalidTimezone, explicit))
		}
		return loc, nil
	}
	if s.Loc == nil {
		return time.UTC, nil
	}
	return s.Loc, nil
}
