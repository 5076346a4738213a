package event

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository provê acesso ao armazenamento de eventos.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	Create(ctx context.Context, input CreateInput) (*Event, error)
	Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
