// Package schema valida corpos de requisição contra regras declarativas
// (tags de struct do validator/v10) antes do handler executar.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/buscaeventos/backend/internal/apperr"
	"github.com/buscaeventos/backend/internal/httpenv"
)

type contextKey struct{}

var payloadKey contextKey

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Relata violações pelo nome do campo no JSON, não pelo nome em Go.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate aplica as tags declarativas de v e devolve um ValidationError
// listando todos os campos violados.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return apperr.Validation("")
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Validation("")
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, describe(fe))
	}

	return apperr.Validation("Validation failed: " + strings.Join(violations, "; "))
}

// DecodeValid decodifica o corpo JSON em T, valida e injeta o payload no
// contexto; qualquer violação encerra a requisição com 400.
func DecodeValid[T any]() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload T
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				httpenv.WriteError(w, apperr.Validation("Invalid JSON body."))
				return
			}

			if err := Validate(&payload); err != nil {
				httpenv.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), payloadKey, &payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Payload recupera o corpo já validado por DecodeValid.
func Payload[T any](ctx context.Context) *T {
	payload, _ := ctx.Value(payloadKey).(*T)
	return payload
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}
