package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	ports "blog-service/internal/domain/ports/output"
	banner_repository "blog-service/internal/domain/ports/output/banner"
	post_repository "blog-service/internal/domain/ports/output/post"
	"blog-service/internal/infrastructure/config"
	banner_memory "blog-service/internal/infrastructure/outbound/repository/banner/memory"
	banner_mongo "blog-service/internal/infrastructure/outbound/repository/banner/mongo"
	banner_postgres "blog-service/internal/infrastructure/outbound/repository/banner/postgres"
	mongo_client "blog-service/internal/infrastructure/outbound/repository/mongo"
	post_memory "blog-service/internal/infrastructure/outbound/repository/post/memory"
	post_mongo "blog-service/internal/infrastructure/outbound/repository/post/mongo"
	post_postgres "blog-service/internal/infrastructure/outbound/repository/post/postgres"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
)

const disconnectTimeout = 10 * time.Second

// Repositories holds the two collections of the configured backend. Close
// releases the underlying connection.
type Repositories struct {
	Posts   post_repository.Repository
	Banners banner_repository.Repository
	Close   func()
}

// Open connects to the backend named by cfg.Storage.Type and verifies it is
// reachable before returning.
func Open(ctx context.Context, cfg *config.Config, log ports.Logger, metrics ports.MetricsProvider) (*Repositories, error) {
	log.Info("Opening storage", slog.String("type", cfg.Storage.Type))

	switch cfg.Storage.Type {
	case config.StorageMongo:
		return openMongo(ctx, cfg.Mongo, log, metrics)
	case config.StoragePostgres:
		return openPostgres(ctx, cfg.Database, cfg.Mongo, log, metrics)
	case config.StorageMemory:
		return &Repositories{
			Posts:   post_memory.NewPostRepository(log),
			Banners: banner_memory.NewBannerRepository(log),
			Close:   func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

func openMongo(ctx context.Context, cfg config.Mongo, log ports.Logger, metrics ports.MetricsProvider) (*Repositories, error) {
	client, err := mongo_client.NewClient(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.DbName)
	return &Repositories{
		Posts:   post_mongo.NewPostRepository(db.Collection(cfg.BlogsCollection), log, metrics),
		Banners: banner_mongo.NewBannerRepository(db.Collection(cfg.BannersCollection), log, metrics),
		Close: func() {
			mongo_client.Disconnect(client, disconnectTimeout, log)
		},
	}, nil
}

// openPostgres keeps the collection names from the mongo section so both
// backends address the same logical collections.
func openPostgres(ctx context.Context, cfg config.Database, names config.Mongo, log ports.Logger, metrics ports.MetricsProvider) (*Repositories, error) {
	dsn := cfg.DSN()

	if err := postgres.RunMigrations(dsn, cfg.MigrationsPath, log); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error("Failed to ping postgres", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	log.Info("Successfully connected to PostgreSQL",
		slog.String("host", cfg.Host),
		slog.String("db", cfg.DbName))

	return &Repositories{
		Posts:   post_postgres.NewPostRepository(pool, names.BlogsCollection, log, metrics),
		Banners: banner_postgres.NewBannerRepository(pool, names.BannersCollection, log, metrics),
		Close: func() {
			pool.Close()
			log.Info("PostgreSQL pool closed")
		},
	}, nil
}
