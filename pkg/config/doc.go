// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: dotenv
// files are merged into the process environment and then parsed into any
// struct annotated with env tags. Every configuration type is parsed once
// and cached for the lifetime of the process, so components can call Load
// wherever they need their settings.
//
// # Usage
//
//	type Config struct {
//		Strategy executor.Strategy `env:"VALID_STRATEGY" envDefault:"pool"`
//		PoolSize int               `env:"VALID_POOL_SIZE" envDefault:"0"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load extra dotenv files before the first Load call:
//
//	if err := config.LoadEnv(".env", ".env.local"); err != nil {
//		return err
//	}
//
// # Errors
//
// Parsing failures are wrapped with ErrParsingConfig, unreadable dotenv
// files with ErrEnvFile. Failed loads are not cached.
//
// # Testing
//
// Reset drops the cache, which lets tests load the same type with a
// different environment.
package config
