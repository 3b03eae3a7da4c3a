package blog_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/blog --outpkg mocks --with-expecter --filename BlogService.go
type Service interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListPostsByCategory(ctx context.Context, category string) ([]model.Post, error)
	SearchPosts(ctx context.Context, key string) ([]model.Post, error)
	ListBanners(ctx context.Context) ([]model.Banner, error)
	CreateBanner(ctx context.Context, banner model.Banner) (*model.InsertResult, error)
}
