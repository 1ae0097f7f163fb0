package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/schoolplatform/internal/client/store"
	"github.com/dmitrijs2005/schoolplatform/internal/envx"
	"github.com/dmitrijs2005/schoolplatform/internal/flagx"
	"github.com/dmitrijs2005/schoolplatform/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	MetricsAddr      string         `json:"metrics_addr"`
	Storage          store.Options  `json:"storage"`
	SessionSecret    string         `json:"session_secret"`
	LogLevel         string         `json:"log_level"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays cfg with the file named by -c/-config. Keys missing
// from the file keep their current values.
func parseJson(cfg *Config, args []string) {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := JsonConfig{
		EndpointAddrGRPC: cfg.EndpointAddrGRPC,
		MetricsAddr:      cfg.MetricsAddr,
		Storage:          cfg.Storage,
		SessionSecret:    cfg.SessionSecret,
		LogLevel:         cfg.LogLevel,
		ShutdownTimeout:  timex.Duration{Duration: cfg.ShutdownTimeout},
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.EndpointAddrGRPC = jc.EndpointAddrGRPC
	cfg.MetricsAddr = jc.MetricsAddr
	cfg.Storage = jc.Storage
	cfg.SessionSecret = jc.SessionSecret
	cfg.LogLevel = jc.LogLevel
	cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
}

func parseEnv(cfg *Config) {
	if err := envx.ParseEnv(cfg, EnvPrefix); err != nil {
		panic(err)
	}
}
