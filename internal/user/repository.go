package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository provê acesso ao armazenamento de usuários.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetCredentials(ctx context.Context, username string) (*Credentials, error)
	Create(ctx context.Context, input CreateInput) (*User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
