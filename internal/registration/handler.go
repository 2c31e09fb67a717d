package registration

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizflow/quizflow-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para submit-quiz")
		serverError(w)
		return
	}

	switch req.Action {
	case ActionRegisterUser:
		h.registerUser(w, r, req.Data)
	case ActionSaveResults:
		h.saveResults(w, r, req.Data)
	default:
		log.Warnf("Ação desconhecida recebida: %q", req.Action)
		config.JSON(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid action specified.",
		})
	}
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request, data json.RawMessage) {
	log := config.WithContext(r.Context())

	var req RegisterRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.WithError(err).Error("Payload inválido para register-user")
		serverError(w)
		return
	}

	outcome, err := h.service.Register(r.Context(), req)
	switch {
	case errors.Is(err, ErrEmailTaken):
		config.JSON(w, http.StatusConflict, map[string]string{
			"message": "This email is already registered.",
		})
	case errors.Is(err, ErrPhoneTaken):
		config.JSON(w, http.StatusConflict, map[string]string{
			"message": "This phone number is already registered.",
		})
	case errors.Is(err, ErrAttemptLimit):
		config.JSON(w, http.StatusForbidden, map[string]string{
			"message": "You have reached the maximum of 3 attempts.",
		})
	case err != nil:
		log.WithError(err).Error("Erro ao registrar usuário")
		serverError(w)
	case outcome.Created:
		config.JSON(w, http.StatusCreated, map[string]string{
			"message": "User registered successfully.",
		})
	default:
		config.JSON(w, http.StatusOK, map[string]string{
			"message": "Welcome back! Starting quiz.",
		})
	}
}

func (h *Handler) saveResults(w http.ResponseWriter, r *http.Request, data json.RawMessage) {
	log := config.WithContext(r.Context())

	var req SaveResultsRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.WithError(err).Error("Payload inválido para save-results")
		serverError(w)
		return
	}

	newAttempts, err := h.service.SaveResults(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Erro ao salvar resultados do quiz")
		serverError(w)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Quiz results saved successfully.",
		"newAttempts": newAttempts,
	})
}

func serverError(w http.ResponseWriter) {
	config.JSON(w, http.StatusInternalServerError, map[string]string{
		"message": "An error occurred on the server.",
	})
}
