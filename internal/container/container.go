package container

import (
	"log"

	"github.com/quizflow/quizflow-lambda/internal/config"
	"github.com/quizflow/quizflow-lambda/internal/explanation"
	"github.com/quizflow/quizflow-lambda/internal/registration"
	"github.com/quizflow/quizflow-lambda/internal/storage"
)

type Container struct {
	Config                config.Config
	ExplanationContainer  *explanation.ExplanationContainer
	RegistrationContainer *registration.RegistrationContainer
}

func New() *Container {
	config.Init()
	cfg := config.Load()

	rdb, err := storage.NewRedis(cfg)
	if err != nil {
		log.Fatalf("failed to build redis client: %v", err)
	}

	return &Container{
		Config:                cfg,
		ExplanationContainer:  explanation.NewExplanationContainer(cfg),
		RegistrationContainer: registration.NewRegistrationContainer(rdb, cfg),
	}
}
