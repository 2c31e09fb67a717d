package explanation

import (
	"context"
)

type Service interface {
	Explain(ctx context.Context, req ExplanationRequest) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) Explain(ctx context.Context, req ExplanationRequest) (string, error) {
	text, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return "", err
	}
	if text == "" {
		return fallbackExplanation, nil
	}
	return text, nil
}
