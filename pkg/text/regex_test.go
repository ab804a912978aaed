package text_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/text"
)

func texts(parts []text.Text) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}
	return out
}

func TestText_RegexReplace(t *testing.T) {
	t.Parallel()

	t.Run("backreferences", func(t *testing.T) {
		t.Parallel()
		got, err := text.New("fooBar bazQux").RegexReplace(`([a-z])([A-Z])`, "$1 $2")
		require.NoError(t, err)
		assert.Equal(t, "foo Bar baz Qux", got.String())
	})

	t.Run("named reference", func(t *testing.T) {
		t.Parallel()
		got, err := text.New("2024-05").RegexReplace(`(?<y>\d+)-(?<m>\d+)`, "${m}/${y}")
		require.NoError(t, err)
		assert.Equal(t, "05/2024", got.String())
	})

	t.Run("unicode classes", func(t *testing.T) {
		t.Parallel()
		got, err := text.New("Żółw 42!").RegexReplace(`[^\p{L}]`, "")
		require.NoError(t, err)
		assert.Equal(t, "Żółw", got.String())
	})

	t.Run("callback", func(t *testing.T) {
		t.Parallel()
		got, err := text.New("a-b-c").RegexReplaceFunc(`[a-z]`, func(m text.Match) string {
			return strings.ToUpper(m.Value)
		})
		require.NoError(t, err)
		assert.Equal(t, "A-B-C", got.String())
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		orig := text.New("abc")
		got, err := orig.RegexReplace(`(`, "")
		require.ErrorIs(t, err, text.ErrInvalidPattern)
		assert.Equal(t, "abc", got.String())

		_, err = orig.RegexReplaceFunc(`[`, func(text.Match) string { return "" })
		require.ErrorIs(t, err, text.ErrInvalidPattern)
	})
}

func TestText_Matches(t *testing.T) {
	t.Parallel()

	ok, err := text.New("abc").Matches("B", text.IgnoreCase())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = text.New("abc").Matches("B")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = text.New("a\nb").Matches("a.b")
	require.NoError(t, err)
	assert.True(t, ok, "dot matches newline by default")

	ok, err = text.New("a\nb").Matches("a.b", text.DotExcludesNewline())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = text.New("x\ny").Matches("^y")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = text.New("x\ny").Matches("^y", text.Multiline())
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = text.New("x").Matches(`\`)
	require.ErrorIs(t, err, text.ErrInvalidPattern)

	assert.True(t, text.New("abc").MatchesPattern(text.MustCompile(`^a`)))
}

func TestText_Match(t *testing.T) {
	t.Parallel()

	m, err := text.New("say key=value now").Match(`(?<k>\w+)=(?<v>\w+)`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "key=value", m.Value)
	assert.Equal(t, 4, m.Index)
	assert.Equal(t, 9, m.Length)
	assert.Equal(t, []string{"key=value", "key", "value"}, m.Groups)
	assert.Equal(t, map[string]string{"k": "key", "v": "value"}, m.Named)

	m, err = text.New("nothing").Match(`\d`)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestText_SearchAll(t *testing.T) {
	t.Parallel()

	all, err := text.New("a1b22c333").SearchAll(`\d+`, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].Value)
	assert.Equal(t, "22", all[1].Value)
	assert.Equal(t, "333", all[2].Value)
	assert.Equal(t, 6, all[2].Index)

	limited, err := text.New("a1b22c333").SearchAll(`\d+`, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	idx, err := text.New("éé1").SearchAll(`\d`, 0)
	require.NoError(t, err)
	require.Len(t, idx, 1)
	assert.Equal(t, 2, idx[0].Index, "index counts characters")
}

func TestText_RegexSplit(t *testing.T) {
	t.Parallel()

	parts, err := text.New("a1b22c").RegexSplit(`\d+`, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, texts(parts))

	parts, err = text.New("a1b22c").RegexSplit(`\d+`, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b22c"}, texts(parts))

	parts, err = text.New("é, ü,ö").RegexSplit(`,\s*`, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"é", "ü", "ö"}, texts(parts))

	_, err = text.New("x").RegexSplit(`(`, 0)
	require.ErrorIs(t, err, text.ErrInvalidPattern)
}

func TestText_ScanMatches(t *testing.T) {
	t.Parallel()

	parts, err := text.New("a, b,c").ScanMatches(`,\s*`, 0, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", ", ", "b", ",", "c"}, texts(parts))

	parts, err = text.New("a,b,c,d").ScanMatches(`,`, 2, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c,d"}, texts(parts))

	parts, err = text.New("abc").ScanMatches(`,`, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, texts(parts))

	parts, err = text.New("abc").ScanMatches("", 0, false)
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestText_ScanLinesAndWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"one", "two", "", "three"}, texts(text.New("one\r\ntwo\n\nthree\n").ScanLines()))
	assert.Empty(t, text.New("").ScanLines())
	assert.Equal(t, []string{"Hello", "world", "Foo"}, texts(text.New(" Hello, world! Foo").ScanWords()))
}

func TestText_MustReplace(t *testing.T) {
	t.Parallel()

	p := text.MustCompile(`\s+`)
	assert.Equal(t, "a_b_c", text.New("a  b\tc").MustReplace(p, "_").String())
	assert.Equal(t, "a[  ]b", text.New("a  b").MustReplaceFunc(p, func(m text.Match) string {
		return "[" + m.Value + "]"
	}).String())
	assert.Equal(t, `\s+`, p.String())

	assert.Panics(t, func() { text.MustCompile(`(`) })
}

func TestCompileIsCachedAndConcurrent(t *testing.T) {
	t.Parallel()

	first, err := text.Compile(`cache-\d+`)
	require.NoError(t, err)
	second, err := text.Compile(`cache-\d+`)
	require.NoError(t, err)
	assert.Same(t, first, second)

	ci, err := text.Compile(`cache-\d+`, text.IgnoreCase())
	require.NoError(t, err)
	assert.NotSame(t, first, ci)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := text.New("x cache-1 y").RegexReplace(`cache-\d+`, "hit")
			assert.NoError(t, err, "goroutine %d", i)
			assert.Equal(t, "x hit y", got.String())
		}()
	}
	wg.Wait()
}

func TestSetPatternCacheSize(t *testing.T) {
	text.SetPatternCacheSize(0)
	text.SetPatternCacheSize(1024)

	_, err := text.Compile(`cache-size-\d+`)
	require.NoError(t, err)
	assert.Positive(t, text.PatternCacheLen())
}
