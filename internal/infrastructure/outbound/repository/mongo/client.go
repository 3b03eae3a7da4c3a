package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"
)

// NewClient connects with the stable server API and verifies the deployment
// with a ping. Nested documents decode as maps so they serialize as plain JSON.
func NewClient(ctx context.Context, cfg config.Mongo, log ports.Logger) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(opts)
	if err != nil {
		log.Error("Failed to create mongo client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Error("Failed to ping mongo deployment", slog.String("error", err.Error()))
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Info("Successfully connected to MongoDB",
		slog.String("host", cfg.Host),
		slog.String("db", cfg.DbName))

	return client, nil
}

// Disconnect closes client, bounded by timeout.
func Disconnect(client *mongo.Client, timeout time.Duration, log ports.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Error("Failed to disconnect from MongoDB", slog.String("error", err.Error()))
		return
	}
	log.Info("MongoDB connection closed")
}

// InsertedID renders a driver-assigned id as a string.
func InsertedID(id any) string {
	switch v := id.(type) {
	case interface{ Hex() string }:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
