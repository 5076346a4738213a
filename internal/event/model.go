package event

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event é a entrada de calendário/localização guardada no MongoDB.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
	Location    string             `bson:"location" json:"location"`
	Category    string             `bson:"category" json:"category"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateInput são os campos aceitos na criação; limites vindos do modelo
// de documento original.
type CreateInput struct {
	Title       string    `json:"title" validate:"required,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=200"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required,max=100"`
	Category    string    `json:"category" validate:"required,max=50"`
}

// UpdateInput são os campos aceitos na atualização parcial.
type UpdateInput struct {
	Title       *string    `json:"title" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=200"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location" validate:"omitempty,max=100"`
	Category    *string    `json:"category" validate:"omitempty,max=50"`
}
