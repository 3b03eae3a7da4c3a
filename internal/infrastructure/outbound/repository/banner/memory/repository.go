package memory

import (
	"context"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type BannerRepository struct {
	log     ports.Logger
	mu      sync.RWMutex
	banners []model.Banner
}

func NewBannerRepository(log ports.Logger) *BannerRepository {
	return &BannerRepository{
		log:     log,
		banners: make([]model.Banner, 0),
	}
}

func (b *BannerRepository) Create(ctx context.Context, banner model.Banner) (*model.InsertResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := banner.WithoutID()
	id := bson.NewObjectID().Hex()
	stored[model.IDField] = id
	b.banners = append(b.banners, stored)

	b.log.Debug("Stored banner in memory", slog.String("id", id))
	return &model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (b *BannerRepository) List(ctx context.Context) ([]model.Banner, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]model.Banner, 0, len(b.banners))
	for _, banner := range b.banners {
		result = append(result, banner.Clone())
	}
	return result, nil
}
