package user

import (
	"time"

	"github.com/google/uuid"
)

// User é o registro de identidade persistido no Postgres. A senha fica de
// fora de qualquer serialização JSON.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	CPF          string    `json:"cpf"`
	ZipCode      string    `json:"zipCode"`
	Password     string    `json:"-"`
	ProfileImage *string   `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Credentials é a projeção mínima usada no login.
type Credentials struct {
	ID       uuid.UUID
	Username string
	Password string
}

// CreateInput são os campos aceitos no cadastro. As regras declarativas
// espelham o schema de criação original.
type CreateInput struct {
	Email        string  `json:"email" validate:"required,email,max=100"`
	Username     string  `json:"username" validate:"required,max=100"`
	CPF          string  `json:"cpf" validate:"required"`
	ZipCode      string  `json:"zipCode" validate:"required"`
	Password     string  `json:"password" validate:"required,min=8,max=100"`
	ProfileImage *string `json:"-"`
}

// UpdateInput são os campos aceitos na atualização parcial.
type UpdateInput struct {
	Email        *string `json:"email" validate:"omitempty,email,max=100"`
	Username     *string `json:"username" validate:"omitempty,max=100"`
	CPF          *string `json:"cpf"`
	ZipCode      *string `json:"zipCode"`
	Password     *string `json:"password" validate:"omitempty,min=8,max=100"`
	ProfileImage *string `json:"-"`
}

// Empty informa se a atualização não altera campo algum.
func (in UpdateInput) Empty() bool {
	return in.Email == nil && in.Username == nil && in.CPF == nil &&
		in.ZipCode == nil && in.Password == nil && in.ProfileImage == nil
}

// LoginInput é o corpo do login por username.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult devolve token assinado e o id do usuário autenticado.
type LoginResult struct {
	Token string    `json:"token"`
	ID    uuid.UUID `json:"id"`
}
