package explanation

import (
	"context"

	"github.com/quizflow/quizflow-lambda/internal/config"
)

type ExplanationContainer struct {
	Handler *Handler
}

func NewExplanationContainer(cfg config.Config) *ExplanationContainer {
	ctx := context.Background()
	provider, _ := NewGeminiProvider(ctx, cfg.GeminiAPIKey)
	service := NewService(provider)
	handler := NewHandler(service, cfg)

	return &ExplanationContainer{
		Handler: handler,
	}
}
