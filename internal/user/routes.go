package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mount registra as rotas do módulo de usuários.
func Mount(r chi.Router, handler *Handler, authMW, limitMW func(http.Handler) http.Handler) {
	handler.RegisterRoutes(r, authMW, limitMW)
}
