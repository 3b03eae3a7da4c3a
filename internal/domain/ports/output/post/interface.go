package post_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --with-expecter --filename PostRepository.go
type Repository interface {
	// Create stores post under a storage-assigned id. Used by the seeder only.
	Create(ctx context.Context, post model.Post) (*model.InsertResult, error)
	List(ctx context.Context, filters model.PostFilters) ([]model.Post, error)
}
