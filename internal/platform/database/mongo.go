package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ridloal/dyfn-shop/internal/platform/logger"
)

// ConnectMongo builds a client for uri and returns the named database. Like
// ConnectPostgres, an unreachable server is only logged.
func ConnectMongo(ctx context.Context, uri, name string) (*mongo.Database, error) {
	if name == "" {
		return nil, fmt.Errorf("mongodb database name is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("mongodb ping failed, continuing with lazy reconnect", "err", err)
		return client.Database(name), nil
	}

	logger.Info("Successfully connected to MongoDB", "database", name)
	return client.Database(name), nil
}
