package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is the fallback language when none is configured.
const DefaultLang = "en"

// Catalog resolves message keys to templates per language, with plural
// selection and placeholder expansion. It is immutable after New and safe
// for concurrent use.
type Catalog struct {
	// "lang:key.path" -> template
	messages map[string]string

	pluralRules map[string]PluralRule

	missingKeyHandler func(lang, key string)

	defaultLang string
	languages   []string
}

// Option configures a Catalog during construction.
type Option func(*Catalog) error

// New builds a catalog from the given options.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages:    make(map[string]string),
		pluralRules: make(map[string]PluralRule),
		defaultLang: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	c.languages = c.collectLanguages()
	return c, nil
}

// WithDefaultLanguage sets the language used when neither the requested
// language nor its base has a message.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.defaultLang = Canonical(lang)
		return nil
	}
}

// WithMessages adds messages for lang. Nested maps are flattened into
// dot-separated keys, so {"interval": {"day": {"one": ...}}} becomes
// "interval.day.one".
func WithMessages(lang string, messages map[string]any) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.add(Canonical(lang), messages)
		return nil
	}
}

// WithPluralRule overrides the plural rule for lang.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		c.pluralRules[Canonical(lang)] = rule
		return nil
	}
}

// WithMissingKeyHandler registers a callback for keys found in no language.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(c *Catalog) error {
		c.missingKeyHandler = handler
		return nil
	}
}

func (c *Catalog) add(lang string, messages map[string]any) {
	for key, value := range flatten(messages, "") {
		c.messages[lang+":"+key] = value
	}
	if _, ok := c.pluralRules[lang]; !ok {
		c.pluralRules[lang] = RuleFor(lang)
	}
}

// T returns the template for key in lang with placeholders expanded. Lookup
// tries lang, then its base language, then the default language. A key found
// nowhere is returned as is.
func (c *Catalog) T(lang, key string, args ...M) string {
	if msg, ok := c.lookup(lang, func(l string) (string, bool) {
		msg, ok := c.messages[l+":"+key]
		return msg, ok
	}); ok {
		return Expand(msg, merge(nil, args))
	}
	c.missing(lang, key)
	return key
}

// Tn is T for counted messages: it selects key.<form> by the plural rule of
// lang and exposes n as {{count}}.
func (c *Catalog) Tn(lang, key string, n int, args ...M) string {
	form := c.rule(lang)(n)
	if msg, ok := c.lookup(lang, func(l string) (string, bool) {
		return c.plural(l, key, form)
	}); ok {
		return Expand(msg, merge(M{"count": n}, args))
	}
	c.missing(lang, key)
	return key
}

// Has reports whether key exists for lang or its base language, ignoring the
// default-language fallback.
func (c *Catalog) Has(lang, key string) bool {
	lang = Canonical(lang)
	for _, l := range []string{lang, baseLanguage(lang)} {
		if _, ok := c.messages[l+":"+key]; ok {
			return true
		}
	}
	return false
}

// Languages returns the languages with messages, default first and the rest
// sorted.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.languages)
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Match returns the catalog language that best serves lang.
func (c *Catalog) Match(lang string) string {
	return Negotiate(lang, c.languages)
}

func (c *Catalog) lookup(lang string, find func(string) (string, bool)) (string, bool) {
	lang = Canonical(lang)
	tried := make([]string, 0, 3)
	for _, l := range []string{lang, baseLanguage(lang), c.defaultLang} {
		if slices.Contains(tried, l) {
			continue
		}
		tried = append(tried, l)
		if msg, ok := find(l); ok {
			return msg, true
		}
	}
	return "", false
}

func (c *Catalog) plural(lang, key, form string) (string, bool) {
	if msg, ok := c.messages[lang+":"+key+"."+form]; ok {
		return msg, true
	}
	for _, f := range pluralFallbacks(form) {
		if msg, ok := c.messages[lang+":"+key+"."+f]; ok {
			return msg, true
		}
	}
	return "", false
}

func (c *Catalog) rule(lang string) PluralRule {
	lang = Canonical(lang)
	if r, ok := c.pluralRules[lang]; ok {
		return r
	}
	if r, ok := c.pluralRules[baseLanguage(lang)]; ok {
		return r
	}
	return RuleFor(lang)
}

func (c *Catalog) missing(lang, key string) {
	if c.missingKeyHandler != nil {
		c.missingKeyHandler(lang, key)
	}
}

func (c *Catalog) collectLanguages() []string {
	seen := map[string]bool{c.defaultLang: true}
	var others []string
	for k := range c.messages {
		if l, _, ok := strings.Cut(k, ":"); ok && !seen[l] {
			seen[l] = true
			others = append(others, l)
		}
	}
	slices.Sort(others)
	return append([]string{c.defaultLang}, others...)
}

func flatten(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string)
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			maps.Copy(out, flatten(v, full))
		case map[string]string:
			for sub, s := range v {
				out[full+"."+sub] = s
			}
		case nil:
		default:
			out[full] = fmt.Sprint(v)
		}
	}
	return out
}

// Canonical returns the BCP 47 form of lang ("en_us" -> "en-US"). Tags that
// do not parse are returned unchanged.
func Canonical(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	return tag.String()
}

// baseLanguage strips script and region ("pt-BR" -> "pt").
func baseLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	base, conf := tag.Base()
	if conf == language.No {
		return lang
	}
	return base.String()
}
