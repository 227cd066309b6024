package config_test

import (
	"testing"
	"time"

	"github.com/andyle182810/easybill/easybill"
	"github.com/andyle182810/easybill/internal/config"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFromMap_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromMap(map[string]string{})

	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
	require.Empty(t, cfg.APIKey)
	require.Equal(t, easybill.DefaultBaseURL, cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, 60*time.Second, cfg.RetryDelay)
	require.Equal(t, 9, cfg.MaxRetries)
	require.InDelta(t, 0, cfg.RateLimit, 0)
	require.Equal(t, 1, cfg.RateBurst)
	require.Equal(t, 50, cfg.BatchSize)
	require.Equal(t, time.Second, cfg.BatchInterval)
	require.Equal(t, language.German, cfg.Language())
}

func TestFromMap_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromMap(map[string]string{
		"EASYBILL_API_KEY":        "secret",
		"EASYBILL_BASE_URL":       "http://localhost:8080/rest/v1",
		"EASYBILL_LOCALE":         "en",
		"EASYBILL_RETRY_DELAY":    "1s",
		"EASYBILL_MAX_RETRIES":    "2",
		"EASYBILL_RATE_LIMIT":     "0.5",
		"EASYBILL_BATCH_SIZE":     "-1",
		"EASYBILL_BATCH_INTERVAL": "2s",
		"LOG_FORMAT":              "json",
	})

	require.NoError(t, err)
	require.Equal(t, "secret", cfg.APIKey)
	require.Equal(t, "http://localhost:8080/rest/v1", cfg.BaseURL)
	require.Equal(t, language.English, cfg.Language())
	require.Equal(t, time.Second, cfg.RetryDelay)
	require.Equal(t, 2, cfg.MaxRetries)
	require.InDelta(t, 0.5, cfg.RateLimit, 0)
	require.Equal(t, -1, cfg.BatchSize)
	require.Equal(t, 2*time.Second, cfg.BatchInterval)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestFromMap_Rejects(t *testing.T) {
	t.Parallel()

	tests := map[string]map[string]string{
		"negative retries":  {"EASYBILL_MAX_RETRIES": "-1"},
		"negative delay":    {"EASYBILL_RETRY_DELAY": "-1s"},
		"negative rate":     {"EASYBILL_RATE_LIMIT": "-2"},
		"negative interval": {"EASYBILL_BATCH_INTERVAL": "-1s"},
		"bad locale":        {"EASYBILL_LOCALE": "not a locale"},
	}

	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := config.FromMap(environ)

			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.FromMap(map[string]string{"EASYBILL_MAX_RETRIES": "many"})
	require.Error(t, err)
}
