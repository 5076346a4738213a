package event

import "errors"

// ErrNotFound é retornado quando nenhum documento é encontrado.
var ErrNotFound = errors.New("evento não encontrado")

// DuplicateError sinaliza colisão de chave única já traduzida para o
// campo em conflito.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return "campo duplicado: " + e.Field
}
