package registration

import (
	"github.com/go-redis/redis/v8"

	"github.com/quizflow/quizflow-lambda/internal/config"
)

type RegistrationContainer struct {
	Handler *Handler
}

func NewRegistrationContainer(rdb *redis.Client, cfg config.Config) *RegistrationContainer {
	repo := NewRepository(rdb)
	service := NewService(repo, cfg.RegistrationMode)
	handler := NewHandler(service)

	return &RegistrationContainer{
		Handler: handler,
	}
}
