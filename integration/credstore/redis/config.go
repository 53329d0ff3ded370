package redis

import "time"

// Config controls connection establishment and key layout, with environment
// variable mapping for loading through core/config.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	KeyPrefix      string        `env:"BEWIT_REDIS_KEY_PREFIX" envDefault:"bewit:credential:"`
}
