package cache

import (
	"context"

	model "blog-service/internal/domain/models"
)

// BannerCache follows the same generation contract as PostCache.
//
//go:generate mockery --name BannerCache --dir . --output ../../../../../mocks/cache --outpkg mocks --with-expecter --filename BannerCache.go
type BannerCache interface {
	GetBanners(ctx context.Context) ([]model.Banner, int64, error)
	SetBanners(ctx context.Context, generation int64, banners []model.Banner) error
	InvalidateBanners(ctx context.Context) error
}
