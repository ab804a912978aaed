package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/format"
	"github.com/dmitrymomot/textkit/pkg/i18n"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	cat, err := format.DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "de", "es", "fr", "pl", "ru"}, cat.Languages())
	for _, lang := range cat.Languages() {
		for _, key := range []string{"interval.just_now", "interval.ago", "interval.from_now", "interval.yesterday", "interval.tomorrow"} {
			assert.True(t, cat.Has(lang, key), "%s: %s", lang, key)
		}
	}
}

func TestCatalogHumanizer_Humanize(t *testing.T) {
	t.Parallel()

	h, err := format.DefaultHumanizer(format.StaticProvider{Lang: "en"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		d        time.Duration
		opts     format.HumanizeOptions
		expected string
	}{
		{name: "future", d: 90 * time.Second, expected: "in 2 minutes"},
		{name: "past", d: -45 * time.Second, expected: "45 seconds ago"},
		{name: "single unit", d: -time.Hour, expected: "1 hour ago"},
		{name: "absolute zero", d: 0, opts: format.HumanizeOptions{Absolute: true}, expected: "0 seconds"},
		{name: "sub second", d: 300 * time.Millisecond, expected: "just now"},
		{name: "three parts", d: 409 * 24 * time.Hour, opts: format.HumanizeOptions{Parts: 3, Absolute: true}, expected: "1 year, 1 month and 2 weeks"},
		{name: "carry", d: 23*time.Hour + 59*time.Minute + 40*time.Second, opts: format.HumanizeOptions{Absolute: true}, expected: "1 day"},
		{name: "gap ends run", d: 24*time.Hour + 5*time.Minute, opts: format.HumanizeOptions{Parts: 3, Absolute: true}, expected: "1 day"},
		{name: "one day absolute", d: -24 * time.Hour, opts: format.HumanizeOptions{Absolute: true}, expected: "1 day"},
		{name: "short", d: 2*time.Hour + 15*time.Minute, opts: format.HumanizeOptions{Parts: 2, Short: true}, expected: "in 2h 15min"},
		{name: "locale option", d: -3 * 24 * time.Hour, opts: format.HumanizeOptions{Locale: "de"}, expected: "vor 3 Tagen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := h.Humanize(tt.d, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCatalogHumanizer_CustomCatalog(t *testing.T) {
	t.Parallel()

	cat, err := i18n.New(
		i18n.WithDefaultLanguage("nl"),
		i18n.WithMessages("nl", map[string]any{
			"interval": map[string]any{
				"ago":  "{{interval}} geleden",
				"hour": map[string]any{"one": "{{count}} uur", "other": "{{count}} uur"},
			},
		}),
	)
	require.NoError(t, err)

	h := format.NewCatalogHumanizer(cat, format.StaticProvider{Lang: "nl"})
	out, err := h.Humanize(-5*time.Hour, format.HumanizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "5 uur geleden", out)
}

func TestCatalogHumanizer_Unavailable(t *testing.T) {
	t.Parallel()

	var h *format.CatalogHumanizer
	_, err := h.Humanize(time.Hour, format.HumanizeOptions{})
	require.ErrorIs(t, err, format.ErrHumanizerUnavailable)

	_, err = format.NewCatalogHumanizer(nil, nil).Humanize(time.Hour, format.HumanizeOptions{})
	require.ErrorIs(t, err, format.ErrHumanizerUnavailable)
}

func TestDefaultCatalog_Overrides(t *testing.T) {
	t.Parallel()

	cat, err := format.DefaultCatalog(i18n.WithMessages("en", map[string]any{
		"interval": map[string]any{"just_now": "right now"},
	}))
	require.NoError(t, err)

	h := format.NewCatalogHumanizer(cat, format.StaticProvider{Lang: "en"})
	out, err := h.Humanize(0, format.HumanizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "right now", out)

	out, err = h.Humanize(-2*time.Hour, format.HumanizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "2 hours ago", out)
}
