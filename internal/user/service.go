package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/buscaeventos/backend/internal/apperr"
	"github.com/buscaeventos/backend/internal/auth"
)

// Service reúne as regras de negócio de usuários: hashing de senha,
// emissão de token e tradução dos erros do repositório para a taxonomia
// da aplicação.
type Service struct {
	repo   Repository
	tokens *auth.JWTManager
}

// NewService cria uma nova instância do serviço.
func NewService(repo Repository, tokens *auth.JWTManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// List devolve todos os usuários; coleção vazia é 404, como no contrato
// original.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperr.NotFound("No users registered.")
	}
	return users, nil
}

// Get busca usuário por id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}
	return u, nil
}

// Create grava o usuário com a senha já irreversível. Conflito de
// unicidade vira 409 nomeando o campo violado.
func (s *Service) Create(ctx context.Context, input CreateInput) (*User, error) {
	hashed, err := auth.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	input.Password = hashed

	u, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, translateDuplicate(err)
	}
	return u, nil
}

// Update aplica atualização parcial; zero linhas afetadas é falha de
// validação, mantendo o contrato original.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	if input.Password != nil {
		hashed, err := auth.Hash(*input.Password)
		if err != nil {
			return err
		}
		input.Password = &hashed
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return translateDuplicate(err)
	}
	if updated == 0 {
		return apperr.Validation("Failed to update user.")
	}
	return nil
}

// Delete remove por id; nenhuma linha apagada é 404 explícito.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("User not found.")
	}
	return nil
}

// Login autentica por username e emite o token de acesso.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	creds, err := s.repo.GetCredentials(ctx, input.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.Authentication("Invalid username or password.")
		}
		return nil, err
	}

	if creds.Password == "" {
		return nil, apperr.Authentication("Password not found for the user.")
	}

	ok, err := auth.Verify(input.Password, creds.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Authentication("Invalid username or password.")
	}

	token, err := s.tokens.Generate(creds.ID.String(), creds.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ID: creds.ID}, nil
}

func translateDuplicate(err error) error {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return apperr.DuplicateField(dup.Field)
	}
	return err
}
