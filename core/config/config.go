package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache stores one loaded value per configuration type.
	cache sync.Map // reflect.Type -> any

	// loadDotEnvOnce makes the optional .env bootstrap happen at most once
	// per process, before the first environment read.
	loadDotEnvOnce sync.Once
)

// Load populates cfg from environment variables using `env` struct tags.
// The first call for a given type parses the environment; subsequent calls
// return the cached value, so every package sees the same configuration.
//
// A .env file in the working directory is loaded once, best effort, before
// the first parse; missing files are fine.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	loadDotEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFailedToParse, key, err)
	}

	// First writer wins so concurrent loaders of the same type agree.
	cached, _ := cache.LoadOrStore(key, *cfg)
	*cfg = cached.(T)
	return nil
}

// MustLoad is Load that panics on failure, for use during application
// startup where a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
