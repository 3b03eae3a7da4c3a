package post_repository_postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"
)

type PostRepository struct {
	store *postgres.DocumentStore
}

func NewPostRepository(db db.PgDB, collection string, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{store: postgres.NewDocumentStore(db, collection, log, metrics)}
}

func (p *PostRepository) Create(ctx context.Context, post model.Post) (*model.InsertResult, error) {
	return p.store.Insert(ctx, "post_create", post)
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]model.Post, error) {
	queryType := "post_list"
	switch {
	case filters.SearchKey != nil:
		queryType = "post_search"
	case filters.Category != nil:
		queryType = "post_list_by_category"
	}
	return p.store.Find(ctx, queryType, BuildCondition(filters))
}

// BuildCondition translates filters into a WHERE condition over the data
// column, or nil when no filter is set. Fields holding non-string JSON values
// never match.
func BuildCondition(filters model.PostFilters) sq.Sqlizer {
	conds := sq.And{}

	if filters.Category != nil {
		conds = append(conds, sq.And{
			postgres.IsJSONString("category"),
			sq.Eq{postgres.JSONField("category"): *filters.Category},
		})
	}

	if filters.SearchKey != nil {
		pattern := postgres.ContainsPattern(*filters.SearchKey)
		or := sq.Or{}
		for _, field := range model.SearchFields {
			or = append(or, sq.And{
				postgres.IsJSONString(field),
				sq.ILike{postgres.JSONField(field): pattern},
			})
		}
		conds = append(conds, or)
	}

	switch len(conds) {
	case 0:
		return nil
	case 1:
		return conds[0]
	default:
		return conds
	}
}
