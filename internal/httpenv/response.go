package httpenv

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/buscaeventos/backend/internal/apperr"
)

// SuccessEnvelope padroniza respostas com dados.
type SuccessEnvelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ErrorEnvelope padroniza respostas de falha.
type ErrorEnvelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// WriteData escreve o envelope de sucesso.
func WriteData(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(SuccessEnvelope{Data: data, Message: message})
}

// WriteError é o ponto único de saída de falhas: normaliza o erro,
// registra detalhes de 5xx no log e devolve o envelope uniforme.
func WriteError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)

	if appErr.StatusCode >= 500 {
		log.Error().Err(err).Int("status", appErr.StatusCode).Msg("erro interno")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorEnvelope{
		Status:    appErr.Status(),
		Message:   appErr.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
