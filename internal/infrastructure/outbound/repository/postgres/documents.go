package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"
)

const documentsTable = "documents"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// DocumentStore keeps the documents of one collection as JSONB rows.
type DocumentStore struct {
	db         db.PgDB
	collection string
	log        ports.Logger
	metrics    ports.MetricsProvider
}

func NewDocumentStore(db db.PgDB, collection string, log ports.Logger, metrics ports.MetricsProvider) *DocumentStore {
	return &DocumentStore{db: db, collection: collection, log: log, metrics: metrics}
}

// Insert stores doc under a new id. Any id already present in doc is dropped.
func (s *DocumentStore) Insert(ctx context.Context, queryType string, doc model.Document) (*model.InsertResult, error) {
	start := time.Now()

	data, err := json.Marshal(doc.WithoutID())
	if err != nil {
		s.log.Error("Error encoding document", slog.String("collection", s.collection), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	id := uuid.NewString()
	query, args, err := psql.Insert(documentsTable).
		Columns("id", "collection", "data").
		Values(id, s.collection, data).
		ToSql()
	if err != nil {
		s.log.Error("Error building insert query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		s.metrics.IncrementDatabaseQueries(queryType, false)
		s.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
		s.log.Error("Error inserting document",
			slog.String("collection", s.collection),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementDatabaseQueries(queryType, true)
	s.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
	s.log.Debug("Successfully inserted document", slog.String("collection", s.collection), slog.String("id", id))
	return &model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// Find returns the documents of the collection matching cond, oldest first.
// A nil cond selects every document.
func (s *DocumentStore) Find(ctx context.Context, queryType string, cond sq.Sqlizer) ([]model.Document, error) {
	start := time.Now()

	builder := psql.Select("id", "data").
		From(documentsTable).
		Where(sq.Eq{"collection": s.collection})
	if cond != nil {
		builder = builder.Where(cond)
	}

	query, args, err := builder.OrderBy("created_at", "id").ToSql()
	if err != nil {
		s.log.Error("Error building select query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.log.Debug("Executing find query", slog.String("query", query), slog.Int("args", len(args)))
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.metrics.IncrementDatabaseQueries(queryType, false)
		s.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
		s.log.Error("Error querying documents", slog.String("collection", s.collection), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			s.metrics.IncrementDatabaseQueries(queryType, false)
			s.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
			s.log.Error("Error scanning document", slog.String("collection", s.collection), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}

		doc := model.Document{}
		if err := json.Unmarshal(data, &doc); err != nil {
			s.metrics.IncrementDatabaseQueries(queryType, false)
			s.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
			s.log.Error("Error decoding document", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		doc[model.IDField] = id
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		s.metrics.IncrementDatabaseQueries(queryType, false)
		s.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
		s.log.Error("Error iterating documents", slog.String("collection", s.collection), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementDatabaseQueries(queryType, true)
	s.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
	s.log.Debug("Successfully found documents", slog.String("collection", s.collection), slog.Int("count", len(docs)))
	return docs, nil
}

// JSONField is the text accessor for a top-level field of the data column.
func JSONField(name string) string {
	return "data->>'" + quoteKey(name) + "'"
}

// IsJSONString holds only when the named top-level field is a JSON string.
// The ->> accessor renders numbers and booleans as text too.
func IsJSONString(name string) sq.Sqlizer {
	return sq.Expr("jsonb_typeof(data->'" + quoteKey(name) + "') = 'string'")
}

func quoteKey(name string) string {
	return strings.ReplaceAll(name, "'", "''")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds an ILIKE pattern matching key literally anywhere.
func ContainsPattern(key string) string {
	return "%" + likeEscaper.Replace(key) + "%"
}
