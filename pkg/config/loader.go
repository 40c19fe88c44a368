package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	mu      sync.Mutex
	entries = make(map[reflect.Type]*entry)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into the provided configuration struct.
// Each configuration type is parsed once per process; later calls receive
// a copy of the cached value.
//
// The default .env file is read on the first call, if present. Variables
// already set in the process environment take precedence over the file.
//
// It returns ErrNilPointer when v is nil and wraps parse failures in
// ErrParsingConfig. Failed loads are not cached, so a later call retries.
//
// Example:
//
//	var cfg validator.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	e := lookup(reflect.TypeFor[T]())
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})
	if e.err != nil {
		// Drop the failed entry so the next call can retry once the
		// environment is fixed.
		forget(reflect.TypeFor[T](), e)
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it at startup for configuration the program cannot run without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given dotenv files into the process environment and
// drops every cached configuration so the next Load sees the new values.
// Without paths the default .env in the working directory is read.
// Variables already present in the environment are never overwritten.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrEnvFile, err)
	}
	Reset()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Reset drops all cached configurations. The next Load for each type parses
// the environment again.
func Reset() {
	mu.Lock()
	entries = make(map[reflect.Type]*entry)
	mu.Unlock()
}

func lookup(t reflect.Type) *entry {
	mu.Lock()
	defer mu.Unlock()
	e, ok := entries[t]
	if !ok {
		e = &entry{}
		entries[t] = e
	}
	return e
}

func forget(t reflect.Type, e *entry) {
	mu.Lock()
	defer mu.Unlock()
	if entries[t] == e {
		delete(entries, t)
	}
}
