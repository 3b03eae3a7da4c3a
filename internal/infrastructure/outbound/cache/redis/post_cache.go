package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

const (
	postsGenerationKey = "posts:generation"
	allPostsKey        = "all"
	postsByCategoryKey = "category:"
)

type PostCache struct {
	client *Client
	log    ports.Logger
	ttl    time.Duration
}

func NewPostCache(client *Client, ttl time.Duration, log ports.Logger) *PostCache {
	return &PostCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (p *PostCache) GetAllPosts(ctx context.Context) ([]model.Post, int64, error) {
	return p.get(ctx, allPostsKey)
}

func (p *PostCache) SetAllPosts(ctx context.Context, generation int64, posts []model.Post) error {
	return p.set(ctx, generation, allPostsKey, posts)
}

func (p *PostCache) GetPostsByCategory(ctx context.Context, category string) ([]model.Post, int64, error) {
	return p.get(ctx, postsByCategoryKey+category)
}

func (p *PostCache) SetPostsByCategory(ctx context.Context, generation int64, category string, posts []model.Post) error {
	return p.set(ctx, generation, postsByCategoryKey+category, posts)
}

// InvalidatePosts retires every cached post list at once.
func (p *PostCache) InvalidatePosts(ctx context.Context) error {
	generation, err := p.client.BumpGeneration(ctx, postsGenerationKey)
	if err != nil {
		return fmt.Errorf("failed to invalidate posts cache: %w", err)
	}

	p.log.Debug("Invalidated posts cache", slog.Int64("generation", generation))
	return nil
}

func (p *PostCache) get(ctx context.Context, entry string) ([]model.Post, int64, error) {
	generation, err := p.client.Generation(ctx, postsGenerationKey)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read posts cache generation: %w", err)
	}

	key := postsKey(generation, entry)
	var posts []model.Post
	if err := p.client.Get(ctx, key, &posts); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, generation, custom_errors.ErrCacheMiss
		}
		return nil, 0, fmt.Errorf("failed to get posts from cache: %w", err)
	}
	if posts == nil {
		posts = make([]model.Post, 0)
	}

	p.log.Debug("Posts cache hit", slog.String("key", key), slog.Int("count", len(posts)))
	return posts, generation, nil
}

func (p *PostCache) set(ctx context.Context, generation int64, entry string, posts []model.Post) error {
	if err := p.client.Set(ctx, postsKey(generation, entry), posts, p.ttl); err != nil {
		return fmt.Errorf("failed to set posts cache: %w", err)
	}
	return nil
}

func postsKey(generation int64, entry string) string {
	return fmt.Sprintf("posts:%d:%s", generation, entry)
}
