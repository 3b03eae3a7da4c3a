package banner_repository_mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	mongo_client "blog-service/internal/infrastructure/outbound/repository/mongo"
)

type BannerRepository struct {
	collection mongo_client.Collection
	log        ports.Logger
	metrics    ports.MetricsProvider
}

func NewBannerRepository(collection mongo_client.Collection, log ports.Logger, metrics ports.MetricsProvider) *BannerRepository {
	return &BannerRepository{collection: collection, log: log, metrics: metrics}
}

func (b *BannerRepository) Create(ctx context.Context, banner model.Banner) (*model.InsertResult, error) {
	start := time.Now()
	b.log.Debug("Creating new banner", slog.Int("fields", len(banner)))

	res, err := b.collection.InsertOne(ctx, banner.WithoutID())
	if err != nil {
		b.metrics.IncrementDatabaseQueries("banner_create", false)
		b.metrics.RecordDatabaseQueryDuration("banner_create", time.Since(start))
		b.log.Error("Error creating banner", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	id := mongo_client.InsertedID(res.InsertedID)
	b.metrics.IncrementDatabaseQueries("banner_create", true)
	b.metrics.RecordDatabaseQueryDuration("banner_create", time.Since(start))
	b.log.Debug("Successfully created banner", slog.String("id", id))
	return &model.InsertResult{Acknowledged: res.Acknowledged, InsertedID: id}, nil
}

func (b *BannerRepository) List(ctx context.Context) ([]model.Banner, error) {
	start := time.Now()
	b.log.Debug("Listing banners")

	cursor, err := b.collection.Find(ctx, bson.M{})
	if err != nil {
		b.metrics.IncrementDatabaseQueries("banner_list", false)
		b.metrics.RecordDatabaseQueryDuration("banner_list", time.Since(start))
		b.log.Error("Error listing banners", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	banners := make([]model.Banner, 0)
	if err := cursor.All(ctx, &banners); err != nil {
		b.metrics.IncrementDatabaseQueries("banner_list", false)
		b.metrics.RecordDatabaseQueryDuration("banner_list", time.Since(start))
		b.log.Error("Error decoding banners", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	b.metrics.IncrementDatabaseQueries("banner_list", true)
	b.metrics.RecordDatabaseQueryDuration("banner_list", time.Since(start))
	b.log.Debug("Successfully listed banners", slog.Int("count", len(banners)))
	return banners, nil
}
