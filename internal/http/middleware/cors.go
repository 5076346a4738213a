package middleware

import (
	"net/http"
	"strings"
)

// CORS aplica política baseada em ALLOW_ORIGINS. Uma entrada "*" libera
// qualquer origem (comportamento do app móvel em desenvolvimento).
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := false
	allowExact := make(map[string]struct{}, len(allowedOrigins))

	for _, entry := range allowedOrigins {
		entry = strings.TrimSpace(entry)
		if entry == "*" {
			allowAll = true
			continue
		}
		if entry != "" {
			allowExact[entry] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "":
				if _, ok := allowExact[origin]; ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Vary", "Origin")
				}
			}

			if w.Header().Get("Access-Control-Allow-Origin") != "" {
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
