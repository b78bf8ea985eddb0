package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/pkg/config"
)

func TestLoad(t *testing.T) {
	type serverConfig struct {
		Addr  string `env:"TEST_LOAD_ADDR" envDefault:":8080"`
		Debug bool   `env:"TEST_LOAD_DEBUG" envDefault:"false"`
	}

	t.Setenv("TEST_LOAD_ADDR", ":9090")
	t.Setenv("TEST_LOAD_DEBUG", "true")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.Debug)
}

func TestLoadUsesDefaults(t *testing.T) {
	type defaultsConfig struct {
		Addr string `env:"TEST_DEFAULTS_ADDR" envDefault:":8080"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadCachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CACHE_VALUE" envDefault:"initial"`
	}

	t.Setenv("TEST_CACHE_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// The environment changed but the cached parse wins.
	t.Setenv("TEST_CACHE_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadRequiredMissing(t *testing.T) {
	type requiredConfig struct {
		Token string `env:"TEST_REQUIRED_TOKEN,required"`
	}

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[struct{}](nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	type mustConfig struct {
		Token string `env:"TEST_MUST_TOKEN,required"`
	}

	require.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
