package redis

import "time"

// Config holds the connection settings for the message catalog store.
// An empty URL means no Redis store is configured.
type Config struct {
	URL            string        `env:"VALID_REDIS_URL"`                              // redis://:password@localhost:6379/0
	Hash           string        `env:"VALID_REDIS_HASH" envDefault:"valid:messages"` // hash holding the message catalog
	RetryAttempts  int           `env:"VALID_REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // connection attempts before giving up
	RetryInterval  time.Duration `env:"VALID_REDIS_RETRY_INTERVAL" envDefault:"1s"`   // pause between attempts
	ConnectTimeout time.Duration `env:"VALID_REDIS_CONNECT_TIMEOUT" envDefault:"10s"` // overall budget for Connect
}

// Enabled reports whether a Redis URL is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}
