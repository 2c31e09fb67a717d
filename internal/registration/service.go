package registration

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/quizflow/quizflow-lambda/internal/config"
)

const maxAttempts = 3

var (
	ErrEmailTaken   = errors.New("email já registrado")
	ErrPhoneTaken   = errors.New("telefone já registrado")
	ErrAttemptLimit = errors.New("limite de tentativas atingido")
)

type RegisterOutcome struct {
	// Created indica um registro novo; falso significa usuário retornando
	// abaixo do limite, sem nenhuma escrita.
	Created bool
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterOutcome, error)
	SaveResults(ctx context.Context, req SaveResultsRequest) (int64, error)
}

type service struct {
	repo   Repository
	strict bool
	now    func() time.Time
}

func NewService(repo Repository, mode string) Service {
	return &service{
		repo:   repo,
		strict: mode != config.RegistrationLenient,
		now:    time.Now,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*RegisterOutcome, error) {
	if s.strict {
		return s.registerStrict(ctx, req)
	}
	return s.registerLenient(ctx, req)
}

// registerStrict rejeita email/telefone duplicados e usuários no limite de
// tentativas antes de qualquer escrita. A verificação e a criação não são uma
// operação única: duas requisições concorrentes para o mesmo email ainda podem
// passar ambas pela checagem.
func (s *service) registerStrict(ctx context.Context, req RegisterRequest) (*RegisterOutcome, error) {
	taken, err := s.repo.IsEmailRegistered(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.repo.IsPhoneRegistered(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPhoneTaken
	}

	existing, err := s.repo.GetUser(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Registrou mas nunca terminou um quiz; o limite vale mesmo assim.
		if existing.QuizAttempts >= maxAttempts {
			return nil, ErrAttemptLimit
		}
		return &RegisterOutcome{Created: false}, nil
	}

	user := &User{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &RegisterOutcome{Created: true}, nil
}

// registerLenient não verifica unicidade nem limite: cria o registro quando
// ausente e regrava apenas os campos de contato quando presente.
func (s *service) registerLenient(ctx context.Context, req RegisterRequest) (*RegisterOutcome, error) {
	existing, err := s.repo.GetUser(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	user := &User{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if existing == nil {
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.UpdateContact(ctx, user); err != nil {
			return nil, err
		}
	}
	return &RegisterOutcome{Created: true}, nil
}

// SaveResults grava o snapshot da submissão e incrementa o contador do
// usuário. As duas escritas são independentes: se a segunda falhar depois da
// primeira, não há compensação.
func (s *service) SaveResults(ctx context.Context, req SaveResultsRequest) (int64, error) {
	answers, err := json.Marshal(req.Answers)
	if err != nil {
		return 0, err
	}

	result := &QuizResult{
		SubmissionID: uuid.NewString(),
		Name:         req.User.Name,
		Email:        req.User.Email,
		Phone:        req.User.Phone,
		Score:        req.Score,
		Total:        req.Total,
		Answers:      string(answers),
		CompletedAt:  s.now(),
	}

	if _, err := s.repo.SaveResult(ctx, result); err != nil {
		return 0, err
	}

	return s.repo.IncrementAttempts(ctx, req.User.Email)
}
