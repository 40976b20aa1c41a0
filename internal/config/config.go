package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	_ "github.com/joho/godotenv/autoload"
)

// Config represents the app config.
type Config struct {
	Server    Server
	Mongo     Mongo
	API       API
	RateLimit RateLimit
	Logger    Logger
}

// Server represents the HTTP listener configuration.
type Server struct {
	Port           int    `env:"PORT" env-default:"8080"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" env-default:""`
}

// Mongo represents a MongoDB configuration.
type Mongo struct {
	URI            string        `env:"MONGO_URI" env-required:"true"`
	Database       string        `env:"MONGO_DATABASE" env-default:"mongodb-restapis"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// API holds the knobs that change how handlers answer.
type API struct {
	// UnifyNotFound answers 404 for every missing entity and 400 for every
	// malformed id. When false the historical per-endpoint codes are kept.
	UnifyNotFound   bool  `env:"API_UNIFY_NOT_FOUND" env-default:"false"`
	DefaultPageSize int64 `env:"API_DEFAULT_PAGE_SIZE" env-default:"10"`
	MaxPageSize     int64 `env:"API_MAX_PAGE_SIZE" env-default:"100"`
}

// RateLimit represents the per-client request limiter configuration.
type RateLimit struct {
	Enabled bool    `env:"RATE_LIMIT_ENABLED" env-default:"true"`
	RPS     float64 `env:"RATE_LIMIT_RPS" env-default:"3"`
	Burst   int     `env:"RATE_LIMIT_BURST" env-default:"5"`
}

// Logger represents a logger configuration.
type Logger struct {
	Level      string `env:"LOG_LEVEL" env-default:"info"`
	Pretty     bool   `env:"LOG_PRETTY" env-default:"true"`
	File       string `env:"LOG_FILE" env-default:""`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" env-default:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"3"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" env-default:"28"`
}

// Load reads the config from the environment (and a .env file, if present).
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Server.Port)
	}
	if c.API.DefaultPageSize <= 0 {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be positive")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("API_MAX_PAGE_SIZE (%d) must not be below API_DEFAULT_PAGE_SIZE (%d)", c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// Origins returns the trimmed, non-empty entries of ALLOWED_ORIGINS.
func (s Server) Origins() []string {
	var origins []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
