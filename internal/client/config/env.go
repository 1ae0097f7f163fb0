package config

import "github.com/dmitrijs2005/schoolplatform/internal/envx"

// parseEnv overlays cfg with SCHOOLPLATFORM_* variables. Panics on
// malformed values.
func parseEnv(cfg *Config) {
	if err := envx.ParseEnv(cfg, EnvPrefix); err != nil {
		panic(err)
	}
}
