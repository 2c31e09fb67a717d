package registration

import (
	"encoding/json"
	"time"
)

// User é o registro persistido em user:<email>. O contador de tentativas só
// cresce; nunca é reiniciado nem o registro removido.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	QuizAttempts int    `json:"quiz_attempts"`
}

// QuizResult é o snapshot imutável de uma submissão, gravado em
// quiz_result:<email>:<epoch-ms>.
type QuizResult struct {
	SubmissionID string
	Name         string
	Email        string
	Phone        string
	Score        int
	Total        int
	Answers      string
	CompletedAt  time.Time
}

type SubmitRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SaveResultsRequest struct {
	User    RegisterRequest `json:"user"`
	Score   int             `json:"score"`
	Total   int             `json:"total"`
	Answers json.RawMessage `json:"answers"`
}

const (
	ActionRegisterUser = "register-user"
	ActionSaveResults  = "save-results"
)
