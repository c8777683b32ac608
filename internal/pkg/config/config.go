package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// ConfigPath is the launcher configuration document (roles, users,
	// navigation tree). Re-read on every request.
	ConfigPath string `env:"APP_CONFIG_PATH, default=config.yml"`
	// SettingsPath is the shared per-user settings document, used by the
	// file settings backend.
	SettingsPath string `env:"APP_USER_SETTINGS_PATH, default=users.yml"`

	// SettingsBackend selects where user settings persist: "file" or "mongo".
	SettingsBackend string `env:"SETTINGS_BACKEND, default=file"`

	// NotifyTimeout is the hard deadline for one outbound provider call.
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT, default=5s"`
	// NotifyCacheTTL is how long successful counts stay cached when Redis
	// is configured.
	NotifyCacheTTL time.Duration `env:"NOTIFY_CACHE_TTL, default=60s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=navicula"`
}

type RedisConfig struct {
	// Addr empty disables the notification count cache.
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
