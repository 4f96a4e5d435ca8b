package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	PostgresURI string `env:"POSTGRES_URI,required"`
	RedisAddr   string `env:"REDIS_ADDR"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-flash-latest"`

	VertexProjectID string `env:"VERTEX_PROJECT_ID"`
	VertexLocation  string `env:"VERTEX_LOCATION" envDefault:"us-central1"`

	// AITimeout bounds the outbound model call; persistence operations are
	// short and carry no timeout of their own.
	AITimeout time.Duration `env:"AI_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
