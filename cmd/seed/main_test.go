package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	blog_service "blog-service/internal/application/service/blog"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"
	redis_cache "blog-service/internal/infrastructure/outbound/cache/redis"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	banner_memory "blog-service/internal/infrastructure/outbound/repository/banner/memory"
	post_memory "blog-service/internal/infrastructure/outbound/repository/post/memory"
	cache_mock "blog-service/mocks/cache"
	post_repository_mock "blog-service/mocks/post"
)

func TestReadPosts(t *testing.T) {
	posts, err := readPosts(filepath.Join("testdata", "posts.json"))
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "tech", posts[0]["category"])
	assert.Equal(t, "Diary", posts[1]["title"])
}

func TestReadPosts_Errors(t *testing.T) {
	_, err := readPosts(filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "object.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"not an array"}`), 0o600))

	_, err = readPosts(path)
	assert.Error(t, err)
}

func TestSeedPosts_RefreshesCachedLists(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis_cache.NewClientFromRedis(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), log)
	t.Cleanup(func() { _ = client.Close() })
	postCache := redis_cache.NewPostCache(client, time.Minute, log)

	postRepo := post_memory.NewPostRepository(log)
	svc := blog_service.NewBlogServiceCacheDecorator(
		blog_service.NewBlogService(postRepo, banner_memory.NewBannerRepository(log), validator.New(), log, metrics),
		postCache,
		redis_cache.NewBannerCache(client, time.Minute, log),
		log,
		metrics,
	)

	before, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, before)
	before, err = svc.ListPostsByCategory(ctx, "tech")
	require.NoError(t, err)
	assert.Empty(t, before)

	posts, err := readPosts(filepath.Join("testdata", "posts.json"))
	require.NoError(t, err)
	assert.Equal(t, 2, seedPosts(ctx, posts, postRepo, postCache, log))

	after, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)

	after, err = svc.ListPostsByCategory(ctx, "tech")
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Intro", after[0]["title"])
}

func TestSeedPosts_InsertFailures(t *testing.T) {
	log := logger.New("test")
	posts := []model.Post{{"title": "a"}, {"title": "b"}}

	t.Run("Skips failed posts", func(t *testing.T) {
		repo := post_repository_mock.NewRepository(t)
		invalidator := cache_mock.NewPostCache(t)
		repo.On("Create", mock.Anything, posts[0]).Return(nil, custom_errors.ErrDatabaseQuery)
		repo.On("Create", mock.Anything, posts[1]).Return(&model.InsertResult{Acknowledged: true, InsertedID: "2"}, nil)
		invalidator.On("InvalidatePosts", mock.Anything).Return(nil)

		assert.Equal(t, 1, seedPosts(context.Background(), posts, repo, invalidator, log))
	})

	t.Run("Nothing inserted leaves cache alone", func(t *testing.T) {
		repo := post_repository_mock.NewRepository(t)
		invalidator := cache_mock.NewPostCache(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

		assert.Equal(t, 0, seedPosts(context.Background(), posts, repo, invalidator, log))
		invalidator.AssertNotCalled(t, "InvalidatePosts", mock.Anything)
	})

	t.Run("Invalidation failure is logged", func(t *testing.T) {
		repo := post_repository_mock.NewRepository(t)
		invalidator := cache_mock.NewPostCache(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(&model.InsertResult{Acknowledged: true, InsertedID: "1"}, nil)
		invalidator.On("InvalidatePosts", mock.Anything).Return(errors.New("connection refused"))

		assert.Equal(t, 2, seedPosts(context.Background(), posts, repo, invalidator, log))
	})

	t.Run("Without cache", func(t *testing.T) {
		repo := post_repository_mock.NewRepository(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(&model.InsertResult{Acknowledged: true, InsertedID: "1"}, nil)

		assert.Equal(t, 2, seedPosts(context.Background(), posts, repo, nil, log))
	})
}
