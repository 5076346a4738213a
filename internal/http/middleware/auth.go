package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/buscaeventos/backend/internal/apperr"
	"github.com/buscaeventos/backend/internal/auth"
	"github.com/buscaeventos/backend/internal/httpenv"
)

type contextKey string

const contextKeyClaims contextKey = "claims"

// Auth valida o bearer token e injeta as claims no contexto.
// Header ausente é 401; token inválido ou expirado é 403.
func Auth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httpenv.WriteError(w, apperr.Authentication("Unauthorized: No token provided."))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httpenv.WriteError(w, apperr.Forbidden("Forbidden: Invalid or expired token."))
				return
			}

			claims, err := jwtManager.ParseAndValidate(parts[1])
			if err != nil {
				httpenv.WriteError(w, apperr.Forbidden("Forbidden: Invalid or expired token."))
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims recupera as claims do contexto.
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(contextKeyClaims).(*auth.Claims)
	return claims
}
