package banner_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/banner --outpkg mocks --with-expecter --filename BannerRepository.go
type Repository interface {
	Create(ctx context.Context, banner model.Banner) (*model.InsertResult, error)
	List(ctx context.Context) ([]model.Banner, error)
}
