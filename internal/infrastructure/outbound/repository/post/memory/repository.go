package memory

import (
	"context"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type PostRepository struct {
	log   ports.Logger
	mu    sync.RWMutex
	posts []model.Post
}

func NewPostRepository(log ports.Logger) *PostRepository {
	return &PostRepository{
		log:   log,
		posts: make([]model.Post, 0),
	}
}

func (p *PostRepository) Create(ctx context.Context, post model.Post) (*model.InsertResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := post.WithoutID()
	id := bson.NewObjectID().Hex()
	stored[model.IDField] = id
	p.posts = append(p.posts, stored)

	p.log.Debug("Stored post in memory", slog.String("id", id))
	return &model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		if filters.Matches(post) {
			result = append(result, post.Clone())
		}
	}

	p.log.Debug("Listed posts from memory", slog.Int("count", len(result)))
	return result, nil
}
