package cache

import (
	"context"

	model "blog-service/internal/domain/models"
)

// PostCache stores post lists under a generation. Reads report the current
// generation even on a miss; a list stored under an older generation is never
// served, so InvalidatePosts also discards fills that were in flight.
//
//go:generate mockery --name PostCache --dir . --output ../../../../../mocks/cache --outpkg mocks --with-expecter --filename PostCache.go
type PostCache interface {
	GetAllPosts(ctx context.Context) ([]model.Post, int64, error)
	SetAllPosts(ctx context.Context, generation int64, posts []model.Post) error
	GetPostsByCategory(ctx context.Context, category string) ([]model.Post, int64, error)
	SetPostsByCategory(ctx context.Context, generation int64, category string, posts []model.Post) error
	InvalidatePosts(ctx context.Context) error
}
