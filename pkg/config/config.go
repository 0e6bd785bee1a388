package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env             string        `env:"APP_ENV" env-default:"production"`
		Port            int           `env:"APP_PORT" env-default:"3000"`
		SentryUrl       string        `env:"SENTRY_URL"`
		ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" env-default:"0"`
	}
	Metadata struct {
		CacheDriver          string        `env:"METADATA_CACHE_DRIVER" env-default:"memory" env-description:"memory, otter or redis"`
		CacheTTL             time.Duration `env:"METADATA_CACHE_TTL" env-default:"1h"`
		CacheCleanupInterval time.Duration `env:"METADATA_CACHE_CLEANUP_INTERVAL" env-default:"10m"`
		CacheMaxSize         int           `env:"METADATA_CACHE_MAX_SIZE" env-default:"10000"`
		FetchTimeout         time.Duration `env:"METADATA_FETCH_TIMEOUT" env-default:"15s"`
		MaxBodyBytes         int64         `env:"METADATA_MAX_BODY_BYTES" env-default:"10485760"`
		UserAgent            string        `env:"METADATA_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"30"`
		Period   time.Duration `env:"RATE_LIMIT_PERIOD" env-default:"1m"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"10"`
	}
	Cleanup struct {
		Timezone          string        `env:"CLEANUP_TIMEZONE" env-default:"Asia/Ho_Chi_Minh"`
		ActivityRetention time.Duration `env:"CLEANUP_ACTIVITY_RETENTION" env-default:"720h"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		var err error
		cfg, err = Load()
		if err != nil {
			help, _ := cleanenv.GetDescription(&Config{}, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// Load reads the configuration from the environment without caching it.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

// IsDevelopment reports whether error responses may carry debugging details.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// GetDSN returns the Postgres connection URL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
