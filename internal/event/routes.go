package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mount registra as rotas do módulo de eventos.
func Mount(r chi.Router, handler *Handler, authMW func(http.Handler) http.Handler) {
	handler.RegisterRoutes(r, authMW)
}
