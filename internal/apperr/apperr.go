package apperr

import (
	"errors"
	"net/http"
)

// Error é o erro base da aplicação: mensagem visível ao cliente + status HTTP.
// O campo Status segue a convenção da API: "fail" para 4xx, "error" para o resto.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return e.Message
}

// Status devolve "fail" para erros de cliente e "error" para os demais.
func (e *Error) Status() string {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return "fail"
	}
	return "error"
}

// Validation cria erro 400 de corpo/parâmetro inválido.
func Validation(message string) *Error {
	if message == "" {
		message = "Validation failed"
	}
	return &Error{Message: message, StatusCode: http.StatusBadRequest}
}

// NotFound cria erro 404.
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{Message: message, StatusCode: http.StatusNotFound}
}

// Authentication cria erro 401 (credencial ausente ou incorreta).
func Authentication(message string) *Error {
	if message == "" {
		message = "Unauthorized access"
	}
	return &Error{Message: message, StatusCode: http.StatusUnauthorized}
}

// Forbidden cria erro 403 (token presente porém inválido ou expirado).
func Forbidden(message string) *Error {
	return &Error{Message: message, StatusCode: http.StatusForbidden}
}

// DuplicateField cria erro 409 nomeando o campo que violou unicidade.
func DuplicateField(field string) *Error {
	return &Error{Message: field + " already exists.", StatusCode: http.StatusConflict}
}

// From normaliza qualquer erro para *Error; desconhecidos viram 500 genérico.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Message: "An unknown error occurred", StatusCode: http.StatusInternalServerError}
}
