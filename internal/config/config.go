package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort              string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL           string `env:"DATABASE_URL"`
	RedisAddr             string `env:"REDIS_ADDR"`
	RedisPassword         string `env:"REDIS_PASSWORD"`
	RedisDB               int    `env:"REDIS_DB" envDefault:"0"`
	SessionTTLMinutes     int    `env:"SESSION_TTL_MINUTES" envDefault:"720"`
	FeedLimit             int    `env:"FEED_LIMIT" envDefault:"50"`
	CommentWindow         int    `env:"COMMENT_WINDOW" envDefault:"20"`
	RandomSeed            int64  `env:"RANDOM_SEED" envDefault:"0"`
	DefaultFilterStrength string `env:"DEFAULT_FILTER_STRENGTH" envDefault:"medium"`
	WriteRateLimit        int    `env:"WRITE_RATE_LIMIT" envDefault:"30"`
	WriteRateWindowSec    int    `env:"WRITE_RATE_WINDOW_SECONDS" envDefault:"60"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
