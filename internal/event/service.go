package event

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/buscaeventos/backend/internal/apperr"
)

// Service traduz os erros do repositório para a taxonomia da aplicação.
type Service struct {
	repo Repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List devolve todos os eventos; coleção vazia é 404.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apperr.NotFound("No events found.")
	}
	return events, nil
}

// Get busca evento por id.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	evt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return evt, nil
}

// Create insere o evento já validado pelo middleware de schema.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Event, error) {
	evt, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, translate(err)
	}
	return evt, nil
}

// Update aplica atualização parcial e devolve o novo valor.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*Event, error) {
	evt, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, translate(err)
	}
	return evt, nil
}

// Delete remove por id; nada apagado é 404.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Event not found.")
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Event not found.")
	}

	var dup *DuplicateError
	if errors.As(err, &dup) {
		return apperr.DuplicateField(dup.Field)
	}

	return err
}
