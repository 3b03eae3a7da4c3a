package post_repository_mongo

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	mongo_client "blog-service/internal/infrastructure/outbound/repository/mongo"
)

type PostRepository struct {
	collection mongo_client.Collection
	log        ports.Logger
	metrics    ports.MetricsProvider
}

func NewPostRepository(collection mongo_client.Collection, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{collection: collection, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post model.Post) (*model.InsertResult, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.Any("title", post["title"]))

	res, err := p.collection.InsertOne(ctx, post.WithoutID())
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	id := mongo_client.InsertedID(res.InsertedID)
	p.metrics.IncrementDatabaseQueries("post_create", true)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
	p.log.Debug("Successfully created post", slog.String("id", id))
	return &model.InsertResult{Acknowledged: res.Acknowledged, InsertedID: id}, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]model.Post, error) {
	start := time.Now()
	queryType := queryTypeFor(filters)
	filter := BuildFilter(filters)
	p.log.Debug("Listing posts", slog.String("query_type", queryType), slog.Any("filter", filter))

	cursor, err := p.collection.Find(ctx, filter)
	if err != nil {
		p.metrics.IncrementDatabaseQueries(queryType, false)
		p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	posts := make([]model.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		p.metrics.IncrementDatabaseQueries(queryType, false)
		p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
		p.log.Error("Error decoding posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries(queryType, true)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
	p.log.Debug("Successfully listed posts", slog.Int("count", len(posts)))
	return posts, nil
}

// BuildFilter translates filters into a query document. The search key is
// escaped so it matches literally.
func BuildFilter(filters model.PostFilters) bson.M {
	filter := bson.M{}

	if filters.Category != nil {
		filter["category"] = *filters.Category
	}

	if filters.SearchKey != nil {
		pattern := regexp.QuoteMeta(*filters.SearchKey)
		or := make(bson.A, 0, len(model.SearchFields))
		for _, field := range model.SearchFields {
			or = append(or, bson.M{field: bson.Regex{Pattern: pattern, Options: "i"}})
		}
		filter["$or"] = or
	}

	return filter
}

func queryTypeFor(filters model.PostFilters) string {
	switch {
	case filters.SearchKey != nil:
		return "post_search"
	case filters.Category != nil:
		return "post_list_by_category"
	default:
		return "post_list"
	}
}
