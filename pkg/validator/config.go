package validator

import "github.com/dmitrymomot/valid/pkg/executor"

// Config holds the validator settings read from the environment.
type Config struct {
	Strategy executor.Strategy `env:"VALID_STRATEGY" envDefault:"pool"`
	PoolSize int               `env:"VALID_POOL_SIZE" envDefault:"0"` // 0 means GOMAXPROCS
}

// Options converts the configuration into validator options.
func (c Config) Options() []Option {
	opts := []Option{WithStrategy(c.Strategy)}
	if c.PoolSize > 0 {
		opts = append(opts, WithPoolSize(c.PoolSize))
	}
	return opts
}
