package banner_repository_postgres

import (
	"context"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"
)

type BannerRepository struct {
	store *postgres.DocumentStore
}

func NewBannerRepository(db db.PgDB, collection string, log ports.Logger, metrics ports.MetricsProvider) *BannerRepository {
	return &BannerRepository{store: postgres.NewDocumentStore(db, collection, log, metrics)}
}

func (b *BannerRepository) Create(ctx context.Context, banner model.Banner) (*model.InsertResult, error) {
	return b.store.Insert(ctx, "banner_create", banner)
}

func (b *BannerRepository) List(ctx context.Context) ([]model.Banner, error) {
	return b.store.Find(ctx, "banner_list", nil)
}
