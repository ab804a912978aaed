package config_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/internal/config"
)

func lookup(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(config.WithFS(fstest.MapFS{}), config.WithLookupEnv(lookup(nil)))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Layers(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"textkit.yaml": {Data: []byte(`
locale: de-DE
timezone: Europe/Berlin
log:
  level: debug
  format: text
server:
  addr: ":9000"
  shutdown_timeout: 30s
  cache_size: 64
  cors_origins: [https://a.example]
`)},
		".env": {Data: []byte("TEXTKIT_ADDR=:9100\nTEXTKIT_LOG_LEVEL=warn\n")},
	}

	cfg, err := config.Load(
		config.WithFS(fsys),
		config.WithLookupEnv(lookup(map[string]string{
			"TEXTKIT_LOG_LEVEL":      "error",
			"TEXTKIT_MAX_BODY_BYTES": "2048",
			"TEXTKIT_READ_TIMEOUT":   "3s",
			"TEXTKIT_CORS_ORIGINS":   "https://b.example, https://c.example,",
		})),
	)
	require.NoError(t, err)

	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "error", cfg.Log.Level, "process env beats .env")
	assert.Equal(t, ":9100", cfg.Server.Addr, ".env beats yaml")
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 64, cfg.Server.CacheSize)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.Server.CORSOrigins)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []config.Option
		isErr error
	}{
		{
			name:  "named file missing",
			opts:  []config.Option{config.WithFS(fstest.MapFS{}), config.WithFile("custom.yaml")},
			isErr: config.ErrReadFile,
		},
		{
			name:  "bad yaml",
			opts:  []config.Option{config.WithFS(fstest.MapFS{"textkit.yaml": {Data: []byte("server: [")}})},
			isErr: config.ErrParseFile,
		},
		{
			name:  "bad duration",
			opts:  []config.Option{config.WithFS(fstest.MapFS{}), config.WithLookupEnv(lookup(map[string]string{"TEXTKIT_REQUEST_TIMEOUT": "soon"}))},
			isErr: config.ErrInvalidValue,
		},
		{
			name:  "bad number",
			opts:  []config.Option{config.WithFS(fstest.MapFS{}), config.WithLookupEnv(lookup(map[string]string{"TEXTKIT_CACHE_SIZE": "many"}))},
			isErr: config.ErrInvalidValue,
		},
		{
			name:  "bad timezone",
			opts:  []config.Option{config.WithFS(fstest.MapFS{}), config.WithLookupEnv(lookup(map[string]string{"TEXTKIT_TIMEZONE": "Mars/Base"}))},
			isErr: config.ErrInvalidValue,
		},
		{
			name:  "bad level",
			opts:  []config.Option{config.WithFS(fstest.MapFS{}), config.WithLookupEnv(lookup(map[string]string{"TEXTKIT_LOG_LEVEL": "chatty"}))},
			isErr: config.ErrInvalidValue,
		},
		{
			name:  "empty addr",
			opts:  []config.Option{config.WithFS(fstest.MapFS{}), config.WithLookupEnv(lookup(map[string]string{"TEXTKIT_ADDR": ""}))},
			isErr: config.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := append([]config.Option{config.WithLookupEnv(lookup(nil))}, tt.opts...)
			_, err := config.Load(opts...)
			require.ErrorIs(t, err, tt.isErr)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.Locale = "en_GB"
	require.NoError(t, cfg.Validate())

	cfg.Server.CacheSize = 0
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidValue)
}
