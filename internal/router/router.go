package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quizflow/quizflow-lambda/internal/explanation"
	"github.com/quizflow/quizflow-lambda/internal/middlewares"
	"github.com/quizflow/quizflow-lambda/internal/registration"
)

type RouterConfig struct {
	ExplanationHandler  *explanation.Handler
	RegistrationHandler *registration.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/get-explanation", explanation.Routes(cfg.ExplanationHandler))
		r.Mount("/submit-quiz", registration.Routes(cfg.RegistrationHandler))
	})

	return r
}
