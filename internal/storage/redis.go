package storage

import (
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/quizflow/quizflow-lambda/internal/config"
)

// NewRedis constrói o cliente a partir da URL configurada. A conexão é
// preguiçosa: credenciais ausentes ou inválidas só aparecem no primeiro
// comando, dentro do tratamento genérico de erro dos handlers.
func NewRedis(cfg config.Config) (*redis.Client, error) {
	url := cfg.RedisURL
	if url == "" {
		url = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url inválida: %w", err)
	}
	if cfg.RedisToken != "" {
		opt.Password = cfg.RedisToken
	}

	return redis.NewClient(opt), nil
}
