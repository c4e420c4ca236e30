package redis

import "time"

// Config holds Redis connection settings.
type Config struct {
	ConnectionURL  string        `env:"TELEMETRY_REDIS_URL" envDefault:"redis://localhost:6379/0"` // redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"TELEMETRY_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"TELEMETRY_REDIS_RETRY_INTERVAL" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"TELEMETRY_REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
	OpTimeout      time.Duration `env:"TELEMETRY_REDIS_OP_TIMEOUT" envDefault:"3s"` // per Get/Put/Remove call
}
