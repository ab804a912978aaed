package text

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const patternCacheSize = 512

// RegexOption adjusts how a pattern is compiled and evaluated.
type RegexOption func(*regexConfig)

type regexConfig struct {
	options regexp2.RegexOptions
	timeout time.Duration
}

// IgnoreCase makes matching case-insensitive.
func IgnoreCase() RegexOption {
	return func(c *regexConfig) { c.options |= regexp2.IgnoreCase }
}

// Multiline makes ^ and $ match at line boundaries.
func Multiline() RegexOption {
	return func(c *regexConfig) { c.options |= regexp2.Multiline }
}

// DotExcludesNewline stops the dot from matching \n.
func DotExcludesNewline() RegexOption {
	return func(c *regexConfig) { c.options &^= regexp2.Singleline }
}

// WithTimeout bounds the evaluation time of a single match.
func WithTimeout(d time.Duration) RegexOption {
	return func(c *regexConfig) { c.timeout = d }
}

type patternKey struct {
	expr    string
	options regexp2.RegexOptions
	timeout time.Duration
}

var patternCache = sync.OnceValue(func() *lru.Cache[patternKey, *Pattern] {
	c, err := lru.New[patternKey, *Pattern](patternCacheSize)
	if err != nil {
		panic(err)
	}
	return c
})

// SetPatternCacheSize changes how many compiled patterns are kept. Values
// below 1 are ignored. Shrinking evicts the least recently used patterns.
func SetPatternCacheSize(n int) {
	if n > 0 {
		patternCache().Resize(n)
	}
}

// PatternCacheLen reports how many compiled patterns are cached.
func PatternCacheLen() int { return patternCache().Len() }

// Pattern is a compiled regular expression. It is safe for concurrent use.
type Pattern struct {
	re *regexp2.Regexp
}

// Match describes one regular expression match. Index and Length count
// characters. Groups holds the whole match followed by every capture group;
// groups that did not participate are empty.
type Match struct {
	Value  string
	Index  int
	Length int
	Groups []string
	Named  map[string]string
}

// Compile parses expr. Compiled patterns are cached, so compiling the same
// expression repeatedly is cheap.
func Compile(expr string, opts ...RegexOption) (*Pattern, error) {
	cfg := regexConfig{options: regexp2.Singleline}
	for _, opt := range opts {
		opt(&cfg)
	}

	key := patternKey{expr: expr, options: cfg.options, timeout: cfg.timeout}
	if p, ok := patternCache().Get(key); ok {
		return p, nil
	}

	re, err := regexp2.Compile(expr, cfg.options)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, expr, err)
	}
	if cfg.timeout > 0 {
		re.MatchTimeout = cfg.timeout
	}

	p := &Pattern{re: re}
	patternCache().Add(key, p)
	return p, nil
}

// MustCompile is like Compile but panics on an invalid expression.
func MustCompile(expr string, opts ...RegexOption) *Pattern {
	p, err := Compile(expr, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source expression.
func (p *Pattern) String() string { return p.re.String() }

func (p *Pattern) match(s string) (bool, error) {
	ok, err := p.re.MatchString(s)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRegexFailed, err)
	}
	return ok, nil
}

func (p *Pattern) replace(s, repl string) (string, error) {
	out, err := p.re.Replace(s, repl, -1, -1)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrRegexFailed, err)
	}
	return out, nil
}

func (p *Pattern) replaceFunc(s string, fn func(Match) string) (string, error) {
	out, err := p.re.ReplaceFunc(s, func(m regexp2.Match) string {
		return fn(p.convert(&m))
	}, -1, -1)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrRegexFailed, err)
	}
	return out, nil
}

// each calls fn for successive matches until fn returns false.
func (p *Pattern) each(s string, fn func(Match) bool) error {
	m, err := p.re.FindStringMatch(s)
	for m != nil && err == nil {
		if !fn(p.convert(m)) {
			return nil
		}
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegexFailed, err)
	}
	return nil
}

func (p *Pattern) convert(m *regexp2.Match) Match {
	groups := m.Groups()
	out := Match{
		Value:  m.String(),
		Index:  m.Index,
		Length: m.Length,
		Groups: make([]string, len(groups)),
	}
	for i := range groups {
		g := &groups[i]
		out.Groups[i] = g.String()
		if _, err := strconv.Atoi(g.Name); err != nil {
			if out.Named == nil {
				out.Named = make(map[string]string)
			}
			out.Named[g.Name] = g.String()
		}
	}
	return out
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Matches reports whether expr matches anywhere in t.
func (t Text) Matches(expr string, opts ...RegexOption) (bool, error) {
	p, err := Compile(expr, opts...)
	if err != nil {
		return false, err
	}
	return p.match(t.s)
}

// MatchesPattern reports whether p matches anywhere in t. It panics if
// evaluation fails, which only happens when p carries a timeout.
func (t Text) MatchesPattern(p *Pattern) bool { return must(p.match(t.s)) }

// Match returns the first match of expr, or nil when there is none.
func (t Text) Match(expr string, opts ...RegexOption) (*Match, error) {
	p, err := Compile(expr, opts...)
	if err != nil {
		return nil, err
	}
	var found *Match
	err = p.each(t.s, func(m Match) bool {
		found = &m
		return false
	})
	return found, err
}

// SearchAll returns up to limit matches of expr; a limit of zero or below
// returns every match.
func (t Text) SearchAll(expr string, limit int, opts ...RegexOption) ([]Match, error) {
	p, err := Compile(expr, opts...)
	if err != nil {
		return nil, err
	}
	var out []Match
	err = p.each(t.s, func(m Match) bool {
		out = append(out, m)
		return limit <= 0 || len(out) < limit
	})
	return out, err
}

// RegexReplace replaces every match of expr with repl. repl may reference
// groups as $1, ${1} or ${name}; $$ is a literal dollar sign.
func (t Text) RegexReplace(expr, repl string, opts ...RegexOption) (Text, error) {
	p, err := Compile(expr, opts...)
	if err != nil {
		return t, err
	}
	out, err := p.replace(t.s, repl)
	if err != nil {
		return t, err
	}
	return t.with(out), nil
}

// RegexReplaceFunc replaces every match of expr with the result of fn.
func (t Text) RegexReplaceFunc(expr string, fn func(Match) string, opts ...RegexOption) (Text, error) {
	p, err := Compile(expr, opts...)
	if err != nil {
		return t, err
	}
	out, err := p.replaceFunc(t.s, fn)
	if err != nil {
		return t, err
	}
	return t.with(out), nil
}

// MustReplace is RegexReplace with a precompiled pattern. It panics if
// evaluation fails, which only happens when p carries a timeout.
func (t Text) MustReplace(p *Pattern, repl string) Text {
	return t.with(must(p.replace(t.s, repl)))
}

// MustReplaceFunc is RegexReplaceFunc with a precompiled pattern. It panics
// if evaluation fails, which only happens when p carries a timeout.
func (t Text) MustReplaceFunc(p *Pattern, fn func(Match) string) Text {
	return t.with(must(p.replaceFunc(t.s, fn)))
}

// RegexSplit splits t around matches of expr. A limit above zero caps the
// number of parts, the last part holding the remainder.
func (t Text) RegexSplit(expr string, limit int, opts ...RegexOption) ([]Text, error) {
	p, err := Compile(expr, opts...)
	if err != nil {
		return nil, err
	}
	return t.splitPattern(p, limit)
}

func (t Text) splitPattern(p *Pattern, limit int) ([]Text, error) {
	rs := []rune(t.s)
	var out []Text
	pos := 0
	err := p.each(t.s, func(m Match) bool {
		if limit > 0 && len(out) == limit-1 {
			return false
		}
		if m.Length == 0 && m.Index == pos && (m.Index == 0 || m.Index == len(rs)) {
			return true
		}
		out = append(out, t.with(string(rs[pos:m.Index])))
		pos = m.Index + m.Length
		return true
	})
	if err != nil {
		return nil, err
	}
	return append(out, t.with(string(rs[pos:]))), nil
}

// ScanMatches splits t around matches of expr, consuming at most limit
// matches when limit is above zero. With yieldMatch the matched separators
// are returned between the pieces. A Text without any match yields itself.
func (t Text) ScanMatches(expr string, limit int, yieldMatch bool, opts ...RegexOption) ([]Text, error) {
	if expr == "" {
		return nil, nil
	}
	p, err := Compile(expr, opts...)
	if err != nil {
		return nil, err
	}
	return t.scanPattern(p, limit, yieldMatch)
}

func (t Text) scanPattern(p *Pattern, limit int, yieldMatch bool) ([]Text, error) {
	rs := []rune(t.s)
	var out []Text
	pos, n := 0, 0
	err := p.each(t.s, func(m Match) bool {
		out = append(out, t.with(string(rs[pos:m.Index])))
		if yieldMatch {
			out = append(out, t.with(m.Value))
		}
		pos = m.Index + m.Length
		n++
		return limit <= 0 || n < limit
	})
	if err != nil {
		return nil, err
	}
	if pos < len(rs) || len(out) == 0 {
		out = append(out, t.with(string(rs[pos:])))
	}
	return out, nil
}

var (
	lineBreak   = MustCompile(`\r\n|\r|\n`)
	punctuation = MustCompile(`\p{P}`)
)

// ScanLines splits t into lines. Empty lines are kept; a trailing line break
// does not produce an extra empty line.
func (t Text) ScanLines() []Text {
	if t.s == "" {
		return nil
	}
	return must(t.scanPattern(lineBreak, 0, false))
}

// ScanWords splits t into words, treating punctuation as a separator.
func (t Text) ScanWords() []Text {
	parts := must(t.MustReplace(punctuation, " ").scanPattern(whitespaceRun, 0, false))
	out := parts[:0]
	for _, p := range parts {
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}
