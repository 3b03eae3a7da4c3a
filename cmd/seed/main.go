package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	post_repository "blog-service/internal/domain/ports/output/post"
	"blog-service/internal/infrastructure/config"
	"blog-service/internal/infrastructure/logger"
	redis_cache "blog-service/internal/infrastructure/outbound/cache/redis"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository/storage"
)

// postsInvalidator retires cached post lists once new posts are stored.
type postsInvalidator interface {
	InvalidatePosts(ctx context.Context) error
}

func main() {
	file := flag.String("file", "posts.json", "JSON array of post documents")
	flag.Parse()

	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	ctx := context.Background()

	posts, err := readPosts(*file)
	if err != nil {
		log.Error("Failed to read posts", slog.String("file", *file), slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, err := storage.Open(ctx, cfg, log, prometheus_metrics.NewPrometheusMetricsProvider())
	if err != nil {
		log.Error("Failed to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer repos.Close()

	var invalidator postsInvalidator
	if cfg.Redis.Enabled {
		redisClient, err := redis_cache.NewClient(cfg.Redis, log)
		if err != nil {
			log.Error("Failed to create Redis client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			_ = redisClient.Close()
		}()
		invalidator = redis_cache.NewPostCache(redisClient, cfg.Redis.TTL, log)
	}

	inserted := seedPosts(ctx, posts, repos.Posts, invalidator, log)
	log.Info("Seeding finished", slog.Int("inserted", inserted), slog.Int("total", len(posts)))
}

// seedPosts stores each post and returns how many were inserted. Cached post
// lists are invalidated when at least one insert succeeded.
func seedPosts(
	ctx context.Context,
	posts []model.Post,
	repo post_repository.Repository,
	invalidator postsInvalidator,
	log ports.Logger,
) int {
	inserted := 0
	for i, post := range posts {
		result, err := repo.Create(ctx, post)
		if err != nil {
			log.Error("Failed to insert post", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		inserted++
		log.Info("Inserted post", slog.Int("index", i), slog.String("id", result.InsertedID))
	}

	if inserted > 0 && invalidator != nil {
		if err := invalidator.InvalidatePosts(ctx); err != nil {
			log.Error("Failed to invalidate posts cache", slog.String("error", err.Error()))
		}
	}
	return inserted
}

func readPosts(path string) ([]model.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var posts []model.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
