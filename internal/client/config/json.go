package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/schoolplatform/internal/client/store"
	"github.com/dmitrijs2005/schoolplatform/internal/flagx"
	"github.com/dmitrijs2005/schoolplatform/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// timex.Duration so the file may use "3s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	SessionSecret      string         `json:"session_secret"`
	LogLevel           string         `json:"log_level"`
	Storage            store.Options  `json:"storage"`
}

// parseJson overlays cfg with the file named by -c/-config. Keys missing
// from the file keep their current values. Panics on read or decode errors.
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
		ServerEndpointAddr: cfg.ServerEndpointAddr,
		RequestTimeout:     timex.Duration{Duration: cfg.RequestTimeout},
		SessionSecret:      cfg.SessionSecret,
		LogLevel:           cfg.LogLevel,
		Storage:            cfg.Storage,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.SessionSecret = jc.SessionSecret
	cfg.LogLevel = jc.LogLevel
	cfg.Storage = jc.Storage
}
