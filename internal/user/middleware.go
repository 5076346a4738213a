package user

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/buscaeventos/backend/internal/apperr"
	"github.com/buscaeventos/backend/internal/httpenv"
)

type contextKey struct{}

var userKey contextKey

// Getter carrega um usuário por id, devolvendo erro já tipado.
type Getter interface {
	Get(ctx context.Context, id uuid.UUID) (*User, error)
}

// RequireUser pré-carrega o usuário endereçado pelo {id} do caminho e o
// injeta no contexto; ausência vira 404 uniforme antes do handler rodar.
func RequireUser(getter Getter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(chi.URLParam(r, "id"))
			if raw == "" {
				httpenv.WriteError(w, apperr.Validation("User ID is required."))
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				httpenv.WriteError(w, apperr.Validation("User ID is invalid."))
				return
			}

			u, err := getter.Get(r.Context(), id)
			if err != nil {
				httpenv.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext recupera o usuário carregado por RequireUser.
func FromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userKey).(*User)
	return u
}
