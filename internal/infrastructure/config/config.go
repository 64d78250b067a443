package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// SeedDemo loads the demo admin/client/project fixtures into the
	// in-memory store at startup. Ignored when MongoDB is configured.
	SeedDemo bool `env:"SEED_DEMO, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

// MongoConfig selects the production backend. An empty URI means the
// process runs on the in-memory store (zero-dependency operation).
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=client_portal"`
}

// RedisConfig enables the admin stats cache. An empty Addr disables it.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
