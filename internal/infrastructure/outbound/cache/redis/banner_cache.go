package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

const bannersGenerationKey = "banners:generation"

type BannerCache struct {
	client *Client
	log    ports.Logger
	ttl    time.Duration
}

func NewBannerCache(client *Client, ttl time.Duration, log ports.Logger) *BannerCache {
	return &BannerCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (b *BannerCache) GetBanners(ctx context.Context) ([]model.Banner, int64, error) {
	generation, err := b.client.Generation(ctx, bannersGenerationKey)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read banners cache generation: %w", err)
	}

	var banners []model.Banner
	if err := b.client.Get(ctx, bannersKey(generation), &banners); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, generation, custom_errors.ErrCacheMiss
		}
		return nil, 0, fmt.Errorf("failed to get banners from cache: %w", err)
	}
	if banners == nil {
		banners = make([]model.Banner, 0)
	}

	b.log.Debug("Banners cache hit", slog.Int64("generation", generation), slog.Int("count", len(banners)))
	return banners, generation, nil
}

func (b *BannerCache) SetBanners(ctx context.Context, generation int64, banners []model.Banner) error {
	if err := b.client.Set(ctx, bannersKey(generation), banners, b.ttl); err != nil {
		return fmt.Errorf("failed to set banners cache: %w", err)
	}
	return nil
}

func (b *BannerCache) InvalidateBanners(ctx context.Context) error {
	generation, err := b.client.BumpGeneration(ctx, bannersGenerationKey)
	if err != nil {
		return fmt.Errorf("failed to invalidate banners cache: %w", err)
	}

	b.log.Debug("Invalidated banners cache", slog.Int64("generation", generation))
	return nil
}

func bannersKey(generation int64) string {
	return fmt.Sprintf("banners:%d:all", generation)
}
