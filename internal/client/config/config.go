package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/schoolplatform/internal/client/store"
)

// EnvPrefix is prepended to every environment variable read by the CLI.
const EnvPrefix = "SCHOOLPLATFORM_"

// Config holds runtime settings for the schoolplatform CLI.
type Config struct {
	Storage store.Options `envPrefix:"STORAGE_"`

	// SessionSecret turns on signed session snapshots when non-empty.
	SessionSecret string `env:"SESSION_SECRET"`

	// ServerEndpointAddr switches the CLI to a remote account daemon.
	ServerEndpointAddr string `env:"SERVER_ADDR"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Storage = store.Options{
		Driver: store.DriverSQLite,
		DSN:    "data/schoolplatform.db",
	}
	c.SessionSecret = ""
	c.ServerEndpointAddr = ""
	c.RequestTimeout = 5 * time.Second
	c.LogLevel = "warn"
}

// IsRemote reports whether the CLI talks to an account daemon.
func (c *Config) IsRemote() bool {
	return c.ServerEndpointAddr != ""
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the command line, in that order. It panics on malformed input.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
