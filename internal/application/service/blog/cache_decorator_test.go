package blog_service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"
	redis_cache "blog-service/internal/infrastructure/outbound/cache/redis"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	banner_memory "blog-service/internal/infrastructure/outbound/repository/banner/memory"
	post_memory "blog-service/internal/infrastructure/outbound/repository/post/memory"
	blog_service_mock "blog-service/mocks/blog"
	cache_mock "blog-service/mocks/cache"
)

func newTestDecorator(t *testing.T) (*BlogServiceCacheDecorator, *blog_service_mock.Service, *cache_mock.PostCache, *cache_mock.BannerCache) {
	t.Helper()
	svc := blog_service_mock.NewService(t)
	postCache := cache_mock.NewPostCache(t)
	bannerCache := cache_mock.NewBannerCache(t)
	d := NewBlogServiceCacheDecorator(svc, postCache, bannerCache, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
	return d.(*BlogServiceCacheDecorator), svc, postCache, bannerCache
}

func TestCacheDecorator_ListPosts(t *testing.T) {
	posts := []model.Post{{"_id": "1", "title": "First"}}

	t.Run("Cache hit skips service", func(t *testing.T) {
		d, _, postCache, _ := newTestDecorator(t)
		postCache.On("GetAllPosts", mock.Anything).Return(posts, int64(0), nil)

		got, err := d.ListPosts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		d, svc, postCache, _ := newTestDecorator(t)
		postCache.On("GetAllPosts", mock.Anything).Return(nil, int64(3), custom_errors.ErrCacheMiss)
		svc.On("ListPosts", mock.Anything).Return(posts, nil)
		postCache.On("SetAllPosts", mock.Anything, int64(3), posts).Return(nil)

		got, err := d.ListPosts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("Cache read failure falls through without a fill", func(t *testing.T) {
		d, svc, postCache, _ := newTestDecorator(t)
		postCache.On("GetAllPosts", mock.Anything).Return(nil, int64(0), errors.New("connection refused"))
		svc.On("ListPosts", mock.Anything).Return(posts, nil)

		got, err := d.ListPosts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, posts, got)
		postCache.AssertNotCalled(t, "SetAllPosts", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cache write failure is ignored", func(t *testing.T) {
		d, svc, postCache, _ := newTestDecorator(t)
		postCache.On("GetAllPosts", mock.Anything).Return(nil, int64(0), custom_errors.ErrCacheMiss)
		svc.On("ListPosts", mock.Anything).Return(posts, nil)
		postCache.On("SetAllPosts", mock.Anything, int64(0), posts).Return(errors.New("connection refused"))

		got, err := d.ListPosts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("Service error is not cached", func(t *testing.T) {
		d, svc, postCache, _ := newTestDecorator(t)
		postCache.On("GetAllPosts", mock.Anything).Return(nil, int64(0), custom_errors.ErrCacheMiss)
		svc.On("ListPosts", mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

		_, err := d.ListPosts(context.Background())
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		postCache.AssertNotCalled(t, "SetAllPosts", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCacheDecorator_ListPostsByCategory(t *testing.T) {
	posts := []model.Post{{"_id": "1", "category": "tech"}}

	t.Run("Cache hit", func(t *testing.T) {
		d, _, postCache, _ := newTestDecorator(t)
		postCache.On("GetPostsByCategory", mock.Anything, "tech").Return(posts, int64(0), nil)

		got, err := d.ListPostsByCategory(context.Background(), "tech")
		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("Cache miss", func(t *testing.T) {
		d, svc, postCache, _ := newTestDecorator(t)
		postCache.On("GetPostsByCategory", mock.Anything, "tech").Return(nil, int64(2), custom_errors.ErrCacheMiss)
		svc.On("ListPostsByCategory", mock.Anything, "tech").Return(posts, nil)
		postCache.On("SetPostsByCategory", mock.Anything, int64(2), "tech", posts).Return(nil)

		got, err := d.ListPostsByCategory(context.Background(), "tech")
		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("Validation error passes through", func(t *testing.T) {
		d, svc, postCache, _ := newTestDecorator(t)
		postCache.On("GetPostsByCategory", mock.Anything, "").Return(nil, int64(0), custom_errors.ErrCacheMiss)
		svc.On("ListPostsByCategory", mock.Anything, "").Return(nil, custom_errors.ErrEmptyCategory)

		_, err := d.ListPostsByCategory(context.Background(), "")
		assert.ErrorIs(t, err, custom_errors.ErrValidation)
	})
}

func TestCacheDecorator_SearchPosts(t *testing.T) {
	d, svc, _, _ := newTestDecorator(t)
	found := []model.Post{{"_id": "1", "title": "Go"}}
	svc.On("SearchPosts", mock.Anything, "go").Return(found, nil)

	got, err := d.SearchPosts(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, found, got)
}

func TestCacheDecorator_ListBanners(t *testing.T) {
	banners := []model.Banner{{"_id": "b1"}}

	t.Run("Cache hit", func(t *testing.T) {
		d, _, _, bannerCache := newTestDecorator(t)
		bannerCache.On("GetBanners", mock.Anything).Return(banners, int64(0), nil)

		got, err := d.ListBanners(context.Background())
		require.NoError(t, err)
		assert.Equal(t, banners, got)
	})

	t.Run("Cache miss", func(t *testing.T) {
		d, svc, _, bannerCache := newTestDecorator(t)
		bannerCache.On("GetBanners", mock.Anything).Return(nil, int64(5), custom_errors.ErrCacheMiss)
		svc.On("ListBanners", mock.Anything).Return(banners, nil)
		bannerCache.On("SetBanners", mock.Anything, int64(5), banners).Return(nil)

		got, err := d.ListBanners(context.Background())
		require.NoError(t, err)
		assert.Equal(t, banners, got)
	})
}

func TestCacheDecorator_CreateBanner(t *testing.T) {
	banner := model.Banner{"title": "Sale"}
	result := &model.InsertResult{Acknowledged: true, InsertedID: "b1"}

	t.Run("Invalidates banner list", func(t *testing.T) {
		d, svc, _, bannerCache := newTestDecorator(t)
		svc.On("CreateBanner", mock.Anything, banner).Return(result, nil)
		bannerCache.On("InvalidateBanners", mock.Anything).Return(nil)

		got, err := d.CreateBanner(context.Background(), banner)
		require.NoError(t, err)
		assert.Equal(t, result, got)
	})

	t.Run("Invalidation failure still succeeds", func(t *testing.T) {
		d, svc, _, bannerCache := newTestDecorator(t)
		svc.On("CreateBanner", mock.Anything, banner).Return(result, nil)
		bannerCache.On("InvalidateBanners", mock.Anything).Return(errors.New("connection refused"))

		got, err := d.CreateBanner(context.Background(), banner)
		require.NoError(t, err)
		assert.Equal(t, result, got)
	})

	t.Run("Create failure leaves cache alone", func(t *testing.T) {
		d, svc, _, bannerCache := newTestDecorator(t)
		svc.On("CreateBanner", mock.Anything, banner).Return(nil, custom_errors.ErrDatabaseQuery)

		_, err := d.CreateBanner(context.Background(), banner)
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		bannerCache.AssertNotCalled(t, "InvalidateBanners", mock.Anything)
	})
}

// pausingBannerRepository holds the first List call after it has read the
// stored banners, until release is closed.
type pausingBannerRepository struct {
	*banner_memory.BannerRepository
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (p *pausingBannerRepository) List(ctx context.Context) ([]model.Banner, error) {
	banners, err := p.BannerRepository.List(ctx)
	p.once.Do(func() {
		close(p.read)
		<-p.release
	})
	return banners, err
}

func TestCacheDecorator_CreateBannerDuringListFill(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	mr := miniredis.RunT(t)
	client := redis_cache.NewClientFromRedis(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), log)
	t.Cleanup(func() { _ = client.Close() })

	bannerRepo := &pausingBannerRepository{
		BannerRepository: banner_memory.NewBannerRepository(log),
		read:             make(chan struct{}),
		release:          make(chan struct{}),
	}
	svc := NewBlogService(post_memory.NewPostRepository(log), bannerRepo, validator.New(), log, metrics)
	d := NewBlogServiceCacheDecorator(
		svc,
		redis_cache.NewPostCache(client, time.Minute, log),
		redis_cache.NewBannerCache(client, time.Minute, log),
		log,
		metrics,
	)
	ctx := context.Background()

	type listResult struct {
		banners []model.Banner
		err     error
	}
	firstList := make(chan listResult, 1)
	go func() {
		banners, err := d.ListBanners(ctx)
		firstList <- listResult{banners, err}
	}()

	<-bannerRepo.read
	created, err := d.CreateBanner(ctx, model.Banner{"title": "Sale"})
	require.NoError(t, err)
	close(bannerRepo.release)

	first := <-firstList
	require.NoError(t, first.err)
	assert.Empty(t, first.banners)

	got, err := d.ListBanners(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, created.InsertedID, got[0][model.IDField])
	assert.Equal(t, "Sale", got[0]["title"])

	got, err = d.ListBanners(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
