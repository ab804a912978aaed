package format_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/format"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestSystemProvider_Locale(t *testing.T) {
	t.Parallel()

	noSystem := format.WithDetector(func() (string, error) { return "", errors.New("no locale") })

	tests := []struct {
		name     string
		opts     []format.ProviderOption
		explicit string
		expected string
	}{
		{
			name:     "explicit wins",
			opts:     []format.ProviderOption{format.WithDefaultLocale("fr"), format.WithEnv(env(map[string]string{"LANG": "de_DE.UTF-8"}))},
			explicit: "pl_PL",
			expected: "pl-PL",
		},
		{
			name:     "configured default",
			opts:     []format.ProviderOption{format.WithDefaultLocale("fr-FR"), format.WithEnv(env(map[string]string{"LANG": "de_DE.UTF-8"}))},
			expected: "fr-FR",
		},
		{
			name:     "textkit env before LANG",
			opts:     []format.ProviderOption{format.WithEnv(env(map[string]string{format.LocaleEnv: "es", "LANG": "de_DE.UTF-8"}))},
			expected: "es",
		},
		{
			name:     "LC_ALL before LANG",
			opts:     []format.ProviderOption{format.WithEnv(env(map[string]string{"LC_ALL": "ru_RU.UTF-8", "LANG": "de_DE"}))},
			expected: "ru-RU",
		},
		{
			name:     "posix suffixes stripped",
			opts:     []format.ProviderOption{format.WithEnv(env(map[string]string{"LANG": "de_DE.UTF-8@euro"}))},
			expected: "de-DE",
		},
		{
			name:     "C locale skipped",
			opts:     []format.ProviderOption{format.WithEnv(env(map[string]string{"LANG": "C"})), format.WithDetector(func() (string, error) { return "ja-JP", nil })},
			expected: "ja-JP",
		},
		{
			name:     "fallback",
			opts:     []format.ProviderOption{format.WithEnv(env(nil)), noSystem},
			expected: format.FallbackLocale,
		},
		{
			name:     "unparsable explicit ignored",
			opts:     []format.ProviderOption{format.WithEnv(env(nil)), noSystem},
			explicit: "not a locale!",
			expected: format.FallbackLocale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, format.NewSystemProvider(tt.opts...).Locale(tt.explicit))
		})
	}
}

func TestSystemProvider_Location(t *testing.T) {
	t.Parallel()

	p := format.NewSystemProvider(format.WithEnv(env(map[string]string{"TZ": "Europe/Berlin"})))

	loc, err := p.Location("")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	loc, err = p.Location("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	configured := format.NewSystemProvider(format.WithDefaultTimezone("UTC"), format.WithEnv(env(nil)))
	loc, err = configured.Location("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = format.NewSystemProvider(format.WithEnv(env(nil))).Location("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = p.Location("Mars/Olympus")
	require.ErrorIs(t, err, format.ErrInvalidTimezone)

	var ferr *format.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "location", ferr.Op)
}

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	p := format.StaticProvider{Lang: "de_DE"}
	assert.Equal(t, "de-DE", p.Locale(""))
	assert.Equal(t, "en-GB", p.Locale("en-GB"))
	assert.Equal(t, format.FallbackLocale, format.StaticProvider{}.Locale(""))

	loc, err := p.Location("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = p.Location("Nowhere/Special")
	require.ErrorIs(t, err, format.ErrInvalidTimezone)
}
