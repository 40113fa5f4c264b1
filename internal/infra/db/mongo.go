package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"clinic-records/internal/repository"
)

// OpenMongo connects to uri, verifies the primary is reachable and returns the
// named database. The caller disconnects the returned client.
func OpenMongo(ctx context.Context, uri, database string, cfg ConnectionConfig) (*mongo.Client, *mongo.Database, error) {
	cfg = cfg.withDefaults()
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(uint64(cfg.MaxOpenConns)).
		SetMaxConnIdleTime(cfg.ConnMaxIdleTime)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	slog.Info("database connection established successfully",
		slog.String("driver", "mongo"),
		slog.String("database", database),
		slog.Uint64("max_pool_size", uint64(cfg.MaxOpenConns)))
	return client, client.Database(database), nil
}

// MongoIndexes returns the index models created for one collection: the
// listing order and, when the collection has one, its natural key. Natural
// keys are not unique indexes; uniqueness is checked before writes.
func MongoIndexes(collection string) []mongo.IndexModel {
	models := []mongo.IndexModel{{
		Keys:    bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("idx_created_at"),
	}}
	if field, ok := repository.NaturalKeys[collection]; ok {
		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetName("idx_" + field),
		})
	}
	return models
}

// MigrateMongo creates the listing and natural-key indexes of every collection.
func MigrateMongo(ctx context.Context, database *mongo.Database) error {
	for _, name := range repository.Collections {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, MongoIndexes(name)); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
		slog.Info("collection indexes ensured", slog.String("collection", name))
	}
	return nil
}
