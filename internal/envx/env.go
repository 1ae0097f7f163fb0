// Package envx overlays environment variables onto configuration structs.
package envx

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills the `env`-tagged fields of target from the environment.
// Every variable name is prefixed with prefix. Fields whose variable is unset
// keep their current value.
func ParseEnv(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
