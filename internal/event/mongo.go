package event

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implementa Repository sobre a coleção de eventos.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository cria o repositório apontando para a coleção padrão.
func NewMongoRepository(db *mongo.Database, collection string) *MongoRepository {
	return &MongoRepository{collection: db.Collection(collection)}
}

// List devolve todos os eventos ordenados por data.
func (r *MongoRepository) List(ctx context.Context) ([]Event, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID busca evento pelo ObjectID.
func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	var evt Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&evt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &evt, nil
}

// Create insere o documento com createdAt/updatedAt mantidos pelo
// repositório. Colisão no índice único vira DuplicateError.
func (r *MongoRepository) Create(ctx context.Context, input CreateInput) (*Event, error) {
	now := time.Now().UTC()
	evt := Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date.UTC(),
		Location:    input.Location,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := r.collection.InsertOne(ctx, evt)
	if err != nil {
		return nil, translateDuplicateKey(err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		evt.ID = oid
	}
	return &evt, nil
}

// Update aplica $set parcial e devolve o documento já atualizado.
func (r *MongoRepository) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*Event, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Date != nil {
		set["date"] = input.Date.UTC()
	}
	if input.Location != nil {
		set["location"] = *input.Location
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var evt Event
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&evt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, translateDuplicateKey(err)
	}
	return &evt, nil
}

// Delete remove o documento e informa se algo foi apagado.
func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// translateDuplicateKey converte o código 11000 do servidor no erro tipado.
// O único índice único da coleção cobre title+date; o campo relatado é o
// primeiro do índice, como fazia o controller original com keyPattern.
func translateDuplicateKey(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateError{Field: "title"}
	}
	return err
}
