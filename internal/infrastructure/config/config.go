package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs admin session tokens. Required outside development.
	JWTSecret string `env:"JWT_SECRET"`

	// AdminCode is the fixed access code compared for exact equality. When
	// AdminCodeBcrypt is set it takes precedence and AdminCode is ignored.
	AdminCode       string        `env:"ADMIN_CODE,        default=9432144881"`
	AdminCodeBcrypt string        `env:"ADMIN_CODE_BCRYPT"`
	SessionTTL      time.Duration `env:"SESSION_TTL,       default=12h"`

	// WhatsAppNumber is the outbound deep-link contact target.
	WhatsAppNumber   string `env:"WHATSAPP_NUMBER,    default=918240316884"`
	FallbackImageURL string `env:"FALLBACK_IMAGE_URL"`

	Mongo MongoConfig
	Redis RedisConfig
}

// MongoConfig backs the persistent change note. An empty URI disables Mongo
// and keeps the note in memory only.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=minoq"`
}

// RedisConfig backs the admin session registry. An empty address disables
// Redis and keeps sessions in process memory.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
