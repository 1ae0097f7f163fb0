// Package config handles configuration for the account daemon, including
// defaults, a JSON overlay, environment variables and command-line flags.
package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/schoolplatform/internal/client/store"
)

// EnvPrefix is prepended to every environment variable read by the daemon.
const EnvPrefix = "SCHOOLPLATFORM_SERVER_"

// Config holds runtime settings for the account daemon.
//
// Fields:
//   - EndpointAddrGRPC: bind address of the AccountService.
//   - MetricsAddr: bind address of the Prometheus endpoint; empty disables it.
//   - Storage: key/value backend shared with local CLI clients.
//   - SessionSecret: signs session snapshots; must match the CLI setting.
//   - ShutdownTimeout: how long a graceful stop may take.
type Config struct {
	EndpointAddrGRPC string        `env:"GRPC_ADDR"`
	MetricsAddr      string        `env:"METRICS_ADDR"`
	Storage          store.Options `envPrefix:"STORAGE_"`
	SessionSecret    string        `env:"SESSION_SECRET"`
	LogLevel         string        `env:"LOG_LEVEL"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = "127.0.0.1:50051"
	c.MetricsAddr = ":9090"
	c.Storage = store.Options{
		Driver:   store.DriverSQLite,
		DSN:      "data/schoolplatform.db",
		S3Region: "us-east-1",
	}
	c.SessionSecret = ""
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
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
