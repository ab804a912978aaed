package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/normalize"
	"github.com/dmitrymomot/textkit/pkg/slug"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pipeline string
		input    normalize.Value
		opts     normalize.Options
		expected string
	}{
		{name: "slug", pipeline: "slug", input: normalize.String("Hello World!"), expected: "hello-world"},
		{name: "slug options", pipeline: "slug", input: normalize.String("Hello World"), opts: normalize.Options{Slug: []slug.Option{slug.Separator("_")}}, expected: "hello_world"},
		{name: "dashed name", pipeline: "path-slug", input: normalize.String("My Folder/Sub Dir"), expected: "my-folder/sub-dir"},
		{name: "snake name", pipeline: "first_name", input: normalize.String("john smith"), expected: "John"},
		{name: "upper case name", pipeline: "CONSTANT", input: normalize.String("fooBar baz"), expected: "FOO_BAR_BAZ"},
		{name: "alpha to numeric", pipeline: "alphaToNumeric", input: normalize.String("ab"), expected: "27"},
		{name: "numeric to alpha", pipeline: "numericToAlpha", input: normalize.Int(27), expected: "ab"},
		{name: "initials extend by default", pipeline: "initials", input: normalize.String("john"), expected: "Jh"},
		{name: "initials single", pipeline: "initials", input: normalize.String("john"), opts: normalize.Options{NoExtendShort: true}, expected: "J"},
		{name: "slug allowed chars", pipeline: "slug", input: normalize.String("v1.2 notes"), opts: normalize.Options{Slug: []slug.Option{slug.AllowedChars(".")}}, expected: "v1.2-notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, ok, err := normalize.Run(tt.pipeline, tt.input, tt.opts)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("null", func(t *testing.T) {
		t.Parallel()
		out, ok, err := normalize.Run("label", normalize.Null(), normalize.Options{})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, out)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, _, err := normalize.Run("reverse", normalize.String("x"), normalize.Options{})
		require.ErrorIs(t, err, normalize.ErrUnknownPipeline)
	})
}

func TestPipelines_Names(t *testing.T) {
	t.Parallel()

	names := normalize.Pipelines()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "slug")
	assert.Contains(t, names, "alphaToNumeric")
	for _, name := range names {
		_, ok := normalize.Lookup(name)
		assert.True(t, ok, name)
	}
}
