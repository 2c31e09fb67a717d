package explanation

import (
	"encoding/json"
	"net/http"

	"github.com/quizflow/quizflow-lambda/internal/config"
)

type Handler struct {
	service Service
	cfg     config.Config
}

func NewHandler(s Service, cfg config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

func (h *Handler) GetExplanation(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if h.cfg.GeminiAPIKey == "" {
		log.Error("GEMINI_API_KEY ausente no ambiente")
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Server configuration error: API key not found.",
		})
		return
	}

	var req ExplanationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para explicação")
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"message": "An error occurred while getting the explanation.",
		})
		return
	}

	text, err := h.service.Explain(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Erro ao obter explicação do serviço generativo")
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"message": "An error occurred while getting the explanation.",
		})
		return
	}

	config.JSON(w, http.StatusOK, ExplanationResponse{Explanation: text})
}
