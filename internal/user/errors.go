package user

import "errors"

// ErrNotFound é retornado quando nenhum registro é encontrado.
var ErrNotFound = errors.New("usuário não encontrado")

// DuplicateError sinaliza violação de unicidade já traduzida para o campo
// em conflito, para o serviço não inspecionar erros do driver.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return "campo duplicado: " + e.Field
}
