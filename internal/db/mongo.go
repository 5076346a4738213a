package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// EventsCollection é a coleção usada pelo serviço de eventos.
const EventsCollection = "Events"

// NewMongoDatabase conecta no MongoDB com o mesmo retry limitado do
// Postgres e garante o índice único em que o tratamento de conflito confia.
func NewMongoDatabase(ctx context.Context, uri, database string) (*mongo.Database, error) {
	var lastErr error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()

			if err == nil {
				db := client.Database(database)
				if err = ensureEventIndexes(ctx, db); err == nil {
					log.Info().Msg("conexão com MongoDB estabelecida")
					return db, nil
				}
			}
			_ = client.Disconnect(ctx)
		}

		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("falha ao conectar no MongoDB")

		if attempt < connectAttempts {
			select {
			case <-time.After(connectDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("mongodb indisponível após %d tentativas: %w", connectAttempts, lastErr)
}

func ensureEventIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(EventsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("events_title_date_key"),
	})
	return err
}
