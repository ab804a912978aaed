package format

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/dmitrymomot/textkit/pkg/i18n"
)

// HumanizeOptions controls how a duration is put into words.
type HumanizeOptions struct {
	Locale string
	// Parts caps the number of units shown; values below 1 mean 1.
	Parts int
	// Short uses abbreviated units ("3d 4h").
	Short bool
	// Absolute drops the direction ("3 days" instead of "3 days ago").
	Absolute bool
}

// Humanizer turns a signed duration into a phrase. Negative durations lie
// in the past ("3 days ago"), positive ones in the future ("in 3 days").
type Humanizer interface {
	Humanize(d time.Duration, opts HumanizeOptions) (string, error)
}

//go:embed locales/*.yaml
var catalogFiles embed.FS

// DefaultCatalog loads the interval messages shipped with textkit: en, de,
// es, fr, pl and ru. Options run after the built-in files, so
// i18n.WithYAML(os.DirFS(dir)) adds languages or overrides messages.
func DefaultCatalog(opts ...i18n.Option) (*i18n.Catalog, error) {
	sub, err := fs.Sub(catalogFiles, "locales")
	if err != nil {
		return nil, fmt.Errorf("format: locating catalogs: %w", err)
	}
	return i18n.New(append([]i18n.Option{i18n.WithYAML(sub)}, opts...)...)
}

type unit struct {
	key  string
	size time.Duration
}

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

var units = []unit{
	{"year", year},
	{"month", month},
	{"week", week},
	{"day", day},
	{"hour", time.Hour},
	{"minute", time.Minute},
	{"second", time.Second},
}

// CatalogHumanizer renders durations from i18n catalog messages under the
// "interval" prefix. Months are 30 days and years 365 days. The last unit
// shown is rounded to the nearest whole.
type CatalogHumanizer struct {
	catalog *i18n.Catalog
	locales LocaleProvider
}

// NewCatalogHumanizer returns a humanizer over catalog. A nil provider
// means NewSystemProvider().
func NewCatalogHumanizer(catalog *i18n.Catalog, locales LocaleProvider) *CatalogHumanizer {
	if locales == nil {
		locales = NewSystemProvider()
	}
	return &CatalogHumanizer{catalog: catalog, locales: locales}
}

// DefaultHumanizer returns a CatalogHumanizer over DefaultCatalog.
func DefaultHumanizer(locales LocaleProvider) (*CatalogHumanizer, error) {
	cat, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewCatalogHumanizer(cat, locales), nil
}

// Humanize implements Humanizer.
func (h *CatalogHumanizer) Humanize(d time.Duration, opts HumanizeOptions) (string, error) {
	if h == nil || h.catalog == nil {
		return "", fail("humanize", opts.Locale, ErrHumanizerUnavailable)
	}
	lang := h.catalog.Match(h.locales.Locale(opts.Locale))

	past := d < 0
	abs := d
	if past {
		abs = -d
	}

	if abs < time.Second && !opts.Absolute {
		return h.catalog.T(lang, "interval.just_now"), nil
	}

	counts := split(abs, max(opts.Parts, 1))

	if !opts.Absolute && len(counts) == 1 && counts[0].unit.key == "day" && counts[0].n == 1 {
		if past {
			return h.catalog.T(lang, "interval.yesterday"), nil
		}
		return h.catalog.T(lang, "interval.tomorrow"), nil
	}

	words := make([]string, len(counts))
	for i, c := range counts {
		key := "interval." + c.unit.key
		if opts.Short {
			key += "_short"
		}
		words[i] = h.catalog.Tn(lang, key, int(c.n))
	}
	phrase := h.join(lang, words, opts.Short)

	switch {
	case opts.Absolute:
		return phrase, nil
	case past:
		return h.catalog.T(lang, "interval.ago", i18n.M{"interval": phrase}), nil
	}
	return h.catalog.T(lang, "interval.from_now", i18n.M{"interval": phrase}), nil
}

func (h *CatalogHumanizer) join(lang string, words []string, short bool) string {
	if short || len(words) == 1 {
		return strings.Join(words, " ")
	}
	head := strings.Join(words[:len(words)-1], h.catalog.T(lang, "interval.separator"))
	return head + h.catalog.T(lang, "interval.last_separator") + words[len(words)-1]
}

type count struct {
	unit unit
	n    int64
}

// split breaks d into at most parts non-zero units, largest first. The last
// unit that can be shown is rounded half up and carried into larger units
// when it overflows.
func split(d time.Duration, parts int) []count {
	first := len(units) - 1
	for i, u := range units {
		if d >= u.size {
			first = i
			break
		}
	}
	last := min(first+parts-1, len(units)-1)

	ns := make([]int64, len(units))
	rest := d
	for i := first; i <= last; i++ {
		ns[i] = int64(rest / units[i].size)
		rest -= time.Duration(ns[i]) * units[i].size
	}
	if rest*2 >= units[last].size {
		ns[last]++
	}
	for i := last; i > 0; i-- {
		span := time.Duration(ns[i]) * units[i].size
		if span < units[i-1].size {
			break
		}
		ns[i-1] += int64(span / units[i-1].size)
		ns[i] = int64(span % units[i-1].size / units[i].size)
	}

	var out []count
	for i, n := range ns {
		if n == 0 {
			if len(out) > 0 {
				// a gap ends the run: 1 day 0 hours 5 minutes reads "1 day"
				break
			}
			continue
		}
		out = append(out, count{unit: units[i], n: n})
		if len(out) == parts {
			break
		}
	}
	if len(out) == 0 {
		out = append(out, count{unit: units[len(units)-1], n: 0})
	}
	return out
}
