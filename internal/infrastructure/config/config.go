package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is built once at process start and passed by reference to every
// component that needs it; nothing reads the environment after Load returns.
type Config struct {
	Port       string        `env:"PORT,             default=8080"`
	Env        string        `env:"ENV,              default=development"`
	JWTSecret  string        `env:"JWT_SECRET,       required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,        default=720h"`
	LogLevel   string        `env:"LOG_LEVEL,        default=info"`
	MapsAPIKey string        `env:"MAPS_API_KEY"`

	SightingWorkers int `env:"SIGHTING_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=lostfound"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
