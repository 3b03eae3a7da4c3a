package blog_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	blog_service "blog-service/internal/domain/ports/input/blog"
	output "blog-service/internal/domain/ports/output"
	"blog-service/internal/domain/ports/output/cache"
)

// BlogServiceCacheDecorator serves list reads from cache. Cache failures are
// logged and fall through to the wrapped service.
//
// A miss reports the cache generation current before the storage read, and
// the fill is written under that generation. A write that lands after an
// invalidation therefore goes to a retired key and is never served.
type BlogServiceCacheDecorator struct {
	service     blog_service.Service
	postCache   cache.PostCache
	bannerCache cache.BannerCache
	log         output.Logger
	metrics     output.MetricsProvider
}

func NewBlogServiceCacheDecorator(
	service blog_service.Service,
	postCache cache.PostCache,
	bannerCache cache.BannerCache,
	log output.Logger,
	metrics output.MetricsProvider,
) blog_service.Service {
	return &BlogServiceCacheDecorator{
		service:     service,
		postCache:   postCache,
		bannerCache: bannerCache,
		log:         log,
		metrics:     metrics,
	}
}

func (d *BlogServiceCacheDecorator) ListPosts(ctx context.Context) ([]model.Post, error) {
	cacheStart := time.Now()
	cached, generation, err := d.postCache.GetAllPosts(ctx)
	d.metrics.RecordCacheOperationDuration("posts_get", time.Since(cacheStart))
	hit, fillable := d.lookup(err, "posts_all")
	if hit {
		return cached, nil
	}

	posts, err := d.service.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	if fillable {
		setStart := time.Now()
		if err := d.postCache.SetAllPosts(ctx, generation, posts); err != nil {
			d.log.Warn("Failed to cache posts", slog.String("error", err.Error()))
		}
		d.metrics.RecordCacheOperationDuration("posts_set", time.Since(setStart))
	}

	return posts, nil
}

func (d *BlogServiceCacheDecorator) ListPostsByCategory(ctx context.Context, category string) ([]model.Post, error) {
	cacheStart := time.Now()
	cached, generation, err := d.postCache.GetPostsByCategory(ctx, category)
	d.metrics.RecordCacheOperationDuration("posts_by_category_get", time.Since(cacheStart))
	hit, fillable := d.lookup(err, "posts_by_category")
	if hit {
		return cached, nil
	}

	posts, err := d.service.ListPostsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	if fillable {
		setStart := time.Now()
		if err := d.postCache.SetPostsByCategory(ctx, generation, category, posts); err != nil {
			d.log.Warn("Failed to cache posts by category",
				slog.String("category", category),
				slog.String("error", err.Error()))
		}
		d.metrics.RecordCacheOperationDuration("posts_by_category_set", time.Since(setStart))
	}

	return posts, nil
}

// SearchPosts is not cached: search keys are unbounded.
func (d *BlogServiceCacheDecorator) SearchPosts(ctx context.Context, key string) ([]model.Post, error) {
	return d.service.SearchPosts(ctx, key)
}

func (d *BlogServiceCacheDecorator) ListBanners(ctx context.Context) ([]model.Banner, error) {
	cacheStart := time.Now()
	cached, generation, err := d.bannerCache.GetBanners(ctx)
	d.metrics.RecordCacheOperationDuration("banners_get", time.Since(cacheStart))
	hit, fillable := d.lookup(err, "banners")
	if hit {
		return cached, nil
	}

	banners, err := d.service.ListBanners(ctx)
	if err != nil {
		return nil, err
	}

	if fillable {
		setStart := time.Now()
		if err := d.bannerCache.SetBanners(ctx, generation, banners); err != nil {
			d.log.Warn("Failed to cache banners", slog.String("error", err.Error()))
		}
		d.metrics.RecordCacheOperationDuration("banners_set", time.Since(setStart))
	}

	return banners, nil
}

func (d *BlogServiceCacheDecorator) CreateBanner(ctx context.Context, banner model.Banner) (*model.InsertResult, error) {
	result, err := d.service.CreateBanner(ctx, banner)
	if err != nil {
		return nil, err
	}

	if err := d.bannerCache.InvalidateBanners(ctx); err != nil {
		d.log.Warn("Failed to invalidate banners cache after creation",
			slog.String("banner_id", result.InsertedID),
			slog.String("error", err.Error()))
	}

	return result, nil
}

// lookup reports whether the cache answered, and on a miss whether the
// returned generation may be used to fill it.
func (d *BlogServiceCacheDecorator) lookup(err error, entry string) (hit, fillable bool) {
	if err == nil {
		d.log.Debug("Cache hit", slog.String("entry", entry))
		d.metrics.IncrementCacheHits()
		return true, false
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
		return false, true
	}

	d.log.Warn("Failed to read cache", slog.String("entry", entry), slog.String("error", err.Error()))
	return false, false
}
