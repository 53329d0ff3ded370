// Package config provides type-safe environment variable loading with
// per-type caching, used to configure the credential store integrations.
//
// Struct fields map to environment variables through `env` tags parsed by
// the caarlos0/env library; a .env file in the working directory is loaded
// once on first use via godotenv, which keeps local development close to
// the deployed environment.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/bewit/core/config"
//		credredis "github.com/dmitrymomot/bewit/integration/credstore/redis"
//	)
//
//	var cfg credredis.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per process and cached, so
// different packages loading the same type observe identical values.
package config
