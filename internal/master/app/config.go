package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/cappelnord/codeklavier-ar-master/pkg/httpx"
	"github.com/cappelnord/codeklavier-ar-master/pkg/slogx"
)

type Config struct {
	ChannelsFile         string        `env:"CHANNELS_FILE"          envDefault:"channels.json"` // Mutable channels document
	ChannelsTemplateFile string        `env:"CHANNELS_TEMPLATE_FILE"`                            // Optional: copied to ChannelsFile when it is missing
	AppFile              string        `env:"APP_FILE"               envDefault:"app.json"`      // Application directory (JSON with comments)
	AppTemplateFile      string        `env:"APP_TEMPLATE_FILE"`                                 // Optional: copied to AppFile when it is missing
	InfoURL              string        `env:"INFO_URL"`                                          // Optional: where / redirects to
	ResponseDelay        time.Duration `env:"RESPONSE_DELAY"         envDefault:"0s"`            // Artificial delay for /master/ responses
	WSAllowedOrigins     []string      `env:"WS_ALLOWED_ORIGINS"     envSeparator:","`           // Extra origins allowed on /master/ws, "*" for any
	Env                  string        `env:"ENV"                    envDefault:"dev"`           // Environment (dev, staging, prod)
	LogLevel             string        `env:"LOG_LEVEL"              envDefault:"info"`          // Log level (debug, info, warn, error)
	LogFormat            string        `env:"LOG_FORMAT"             envDefault:"json"`          // Log format (json, text)
	Port                 int           `env:"PORT"                   envDefault:"10333"`         // HTTP server port
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD"  envDefault:"10s"`           // Graceful shutdown timeout
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.ResponseDelay < 0 {
		return Config{}, fmt.Errorf("invalid RESPONSE_DELAY %s", cfg.ResponseDelay)
	}

	if err := cfg.logConfig("").Validate(); err != nil {
		return Config{}, err
	}
	if err := httpx.LoadRateLimits(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) logConfig(version string) slogx.Config {
	return slogx.Config{
		Service: "ar-master",
		Version: version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	}
}
