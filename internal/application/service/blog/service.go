package blog_service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	banner_repository "blog-service/internal/domain/ports/output/banner"
	post_repository "blog-service/internal/domain/ports/output/post"
)

type BlogService struct {
	postRepo   post_repository.Repository
	bannerRepo banner_repository.Repository
	validate   *validator.Validate
	log        ports.Logger
	metrics    ports.MetricsProvider
}

func NewBlogService(
	postRepo post_repository.Repository,
	bannerRepo banner_repository.Repository,
	validate *validator.Validate,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *BlogService {
	return &BlogService{
		postRepo:   postRepo,
		bannerRepo: bannerRepo,
		validate:   validate,
		log:        log,
		metrics:    metrics,
	}
}

type searchRequest struct {
	Key string `validate:"required"`
}

type categoryRequest struct {
	Category string `validate:"required"`
}

func (s *BlogService) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.List(ctx, model.PostFilters{})
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("list", true)
	return posts, nil
}

func (s *BlogService) ListPostsByCategory(ctx context.Context, category string) ([]model.Post, error) {
	if err := s.validate.Struct(categoryRequest{Category: category}); err != nil {
		s.metrics.IncrementPostOperations("list_by_category", false)
		return nil, custom_errors.ErrEmptyCategory
	}

	posts, err := s.postRepo.List(ctx, model.PostFilters{Category: &category})
	if err != nil {
		s.metrics.IncrementPostOperations("list_by_category", false)
		s.log.Error("Failed to list posts by category",
			slog.String("category", category),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("list_by_category", true)
	return posts, nil
}

// SearchPosts matches key, trimmed, against the searchable post fields. A
// blank key is a validation error and an empty result is a not-found error.
func (s *BlogService) SearchPosts(ctx context.Context, key string) ([]model.Post, error) {
	key = strings.TrimSpace(key)
	s.log.Debug("Searching posts", slog.String("key", key))

	if err := s.validate.Struct(searchRequest{Key: key}); err != nil {
		s.metrics.IncrementPostOperations("search", false)
		return nil, custom_errors.ErrEmptySearchKey
	}

	posts, err := s.postRepo.List(ctx, model.PostFilters{SearchKey: &key})
	if err != nil {
		s.metrics.IncrementPostOperations("search", false)
		s.log.Error("Failed to search posts", slog.String("key", key), slog.String("error", err.Error()))
		return nil, err
	}

	if len(posts) == 0 {
		s.metrics.IncrementPostOperations("search", false)
		s.log.Debug("No posts matched search key", slog.String("key", key))
		return nil, custom_errors.ErrNoSearchResults
	}

	s.metrics.IncrementPostOperations("search", true)
	return posts, nil
}

func (s *BlogService) ListBanners(ctx context.Context) ([]model.Banner, error) {
	banners, err := s.bannerRepo.List(ctx)
	if err != nil {
		s.metrics.IncrementBannerOperations("list", false)
		s.log.Error("Failed to list banners", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementBannerOperations("list", true)
	return banners, nil
}

func (s *BlogService) CreateBanner(ctx context.Context, banner model.Banner) (*model.InsertResult, error) {
	if banner == nil {
		s.metrics.IncrementBannerOperations("create", false)
		return nil, custom_errors.ErrInvalidBanner
	}

	result, err := s.bannerRepo.Create(ctx, banner)
	if err != nil {
		s.metrics.IncrementBannerOperations("create", false)
		s.log.Error("Failed to create banner", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementBannerOperations("create", true)
	s.log.Info("Banner created", slog.String("id", result.InsertedID))
	return result, nil
}
