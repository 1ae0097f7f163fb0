package envx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Addr    string        `env:"ADDR"`
	Timeout time.Duration `env:"TIMEOUT"`
	Nested  struct {
		Driver string `env:"DRIVER"`
	} `envPrefix:"STORAGE_"`
}

func TestParseEnv_OverridesOnlySetVariables(t *testing.T) {
	cfg := envTestConfig{Addr: "default:1", Timeout: time.Second}
	cfg.Nested.Driver = "sqlite"

	t.Setenv("SP_TEST_TIMEOUT", "3s")
	t.Setenv("SP_TEST_STORAGE_DRIVER", "postgres")

	require.NoError(t, ParseEnv(&cfg, "SP_TEST_"))

	assert.Equal(t, "default:1", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "postgres", cfg.Nested.Driver)
}

func TestParseEnv_Error(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SP_TEST_TIMEOUT", "not-a-duration")

	err := ParseEnv(&cfg, "SP_TEST_")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
