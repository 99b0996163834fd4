package app

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CHANNELS_FILE", "APP_FILE", "RESPONSE_DELAY", "WS_ALLOWED_ORIGINS", "INFO_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 10333, cfg.Port)
	require.Equal(t, "channels.json", cfg.ChannelsFile)
	require.Equal(t, "app.json", cfg.AppFile)
	require.Zero(t, cfg.ResponseDelay)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Empty(t, cfg.InfoURL)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CHANNELS_FILE", "/data/channels.json")
	t.Setenv("CHANNELS_TEMPLATE_FILE", "/etc/master/channels.json")
	t.Setenv("RESPONSE_DELAY", "250ms")
	t.Setenv("WS_ALLOWED_ORIGINS", "display.example,ar.example")
	t.Setenv("INFO_URL", "https://codeklavier.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "/data/channels.json", cfg.ChannelsFile)
	require.Equal(t, "/etc/master/channels.json", cfg.ChannelsTemplateFile)
	require.Equal(t, 250*time.Millisecond, cfg.ResponseDelay)
	require.Equal(t, []string{"display.example", "ar.example"}, cfg.WSAllowedOrigins)
	require.Equal(t, "https://codeklavier.example", cfg.InfoURL)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port not a number", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"bad duration", "RESPONSE_DELAY", "soon"},
		{"negative delay", "RESPONSE_DELAY", "-1s"},
		{"unknown log level", "LOG_LEVEL", "loud"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"bad rate limit", "RATELIMIT_MODERATE_BURST", "-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
