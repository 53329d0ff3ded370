package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bewit/core/config"
)

// No t.Parallel here: tests mutate process environment via t.Setenv.

type storeConfig struct {
	URL     string        `env:"TEST_STORE_URL,required"`
	Timeout time.Duration `env:"TEST_STORE_TIMEOUT" envDefault:"30s"`
	Retries int           `env:"TEST_STORE_RETRIES" envDefault:"3"`
}

type otherConfig struct {
	Name string `env:"TEST_OTHER_NAME" envDefault:"fallback"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env vars and defaults", func(t *testing.T) {
		t.Setenv("TEST_STORE_URL", "redis://localhost:6379/0")
		t.Setenv("TEST_STORE_RETRIES", "5")

		var cfg storeConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "redis://localhost:6379/0", cfg.URL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 5, cfg.Retries)
	})

	t.Run("returns the cached value on repeat loads", func(t *testing.T) {
		t.Setenv("TEST_STORE_URL", "redis://changed:6379/0")

		var cfg storeConfig
		require.NoError(t, config.Load(&cfg))

		// Still the value from the first load of this type.
		assert.Equal(t, "redis://localhost:6379/0", cfg.URL)
		assert.Equal(t, 5, cfg.Retries)
	})

	t.Run("types are cached independently", func(t *testing.T) {
		var cfg otherConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fallback", cfg.Name)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		type missingConfig struct {
			Secret string `env:"TEST_DEFINITELY_UNSET_VAR,required"`
		}
		var cfg missingConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrFailedToParse)
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		err := config.Load[storeConfig](nil)
		require.ErrorIs(t, err, config.ErrNilConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type brokenConfig struct {
			Secret string `env:"TEST_ANOTHER_UNSET_VAR,required"`
		}
		assert.Panics(t, func() {
			var cfg brokenConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads on success", func(t *testing.T) {
		var cfg otherConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, "fallback", cfg.Name)
	})
}
