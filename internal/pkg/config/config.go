package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"JWT_TTL,    default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=account_service"`
}

type RedisConfig struct {
	// CacheEnabled=false runs the service straight against MongoDB.
	CacheEnabled bool          `env:"CACHE_ENABLED, default=true"`
	Addr         string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB           int           `env:"REDIS_DB,      default=0"`
	CacheTTL     time.Duration `env:"CACHE_TTL,     default=5m"`
}

// AdminConfig is read by the seed command only.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME, default=Astrodev"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from an arbitrary lookuper; tests use
// envconfig.MapLookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
