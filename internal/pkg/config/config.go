package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (store identity)
// - default: Values common across all environments (port, timeouts, log format)
// -----------------------------------------------------------------------------

const (
	ModeServer = "server"
	ModeCLI    = "cli"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
}

type AppConfig struct {
	// Mode selects the front end: "server" runs the HTTP API, "cli" runs
	// the interactive rental agreement console.
	Mode       string `envconfig:"APP_MODE" default:"server"`
	StoreID    int    `envconfig:"APP_STORE_ID" required:"true"`
	TerminalID int    `envconfig:"APP_TERMINAL_ID" required:"true"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.App.Mode != ModeServer && cfg.App.Mode != ModeCLI {
		return Config{}, fmt.Errorf("invalid APP_MODE %q: must be %q or %q", cfg.App.Mode, ModeServer, ModeCLI)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Mode:       ModeServer,
			StoreID:    44027,
			TerminalID: 371,
		},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
