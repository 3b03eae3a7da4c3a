package banner_repository_postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	banner_repository_postgres "blog-service/internal/infrastructure/outbound/repository/banner/postgres"
)

const collection = "allBanner"

func setupPostgresTest(t *testing.T) (*banner_repository_postgres.BannerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := banner_repository_postgres.NewBannerRepository(mock, collection, logger.New("test"), prometheus_metrics.NewPrometheusMetricsProvider())
	return repo, mock
}

func TestBannerRepository_Create(t *testing.T) {
	repo, mock := setupPostgresTest(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents (id,collection,data) VALUES ($1,$2,$3)")).
		WithArgs(pgxmock.AnyArg(), collection, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	res, err := repo.Create(context.Background(), model.Banner{"image": "a.png"})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Len(t, res.InsertedID, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBannerRepository_CreateError(t *testing.T) {
	repo, mock := setupPostgresTest(t)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(pgxmock.AnyArg(), collection, pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	res, err := repo.Create(context.Background(), model.Banner{"image": "a.png"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBannerRepository_List(t *testing.T) {
	repo, mock := setupPostgresTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, data FROM documents WHERE collection = $1 ORDER BY created_at, id")).
		WithArgs(collection).
		WillReturnRows(mock.NewRows([]string{"id", "data"}).
			AddRow("b-1", []byte(`{"image":"a.png","meta":{"campaign":"spring"}}`)))

	banners, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, banners, 1)
	assert.Equal(t, "b-1", banners[0].ID())
	assert.Equal(t, map[string]any{"campaign": "spring"}, banners[0]["meta"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
