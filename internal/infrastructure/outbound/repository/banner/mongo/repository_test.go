package banner_repository_mongo_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	banner_repository_mongo "blog-service/internal/infrastructure/outbound/repository/banner/mongo"
	mongo_mock "blog-service/mocks/mongo"
)

func setupBannerTest(t *testing.T) (*banner_repository_mongo.BannerRepository, *mongo_mock.Collection) {
	t.Helper()
	collection := mongo_mock.NewCollection(t)
	repo := banner_repository_mongo.NewBannerRepository(collection, logger.New("test"), prometheus_metrics.NewPrometheusMetricsProvider())
	return repo, collection
}

func TestBannerRepository_Create(t *testing.T) {
	oid := bson.NewObjectID()

	t.Run("Client id is stripped before insert", func(t *testing.T) {
		repo, collection := setupBannerTest(t)
		collection.On("InsertOne", mock.Anything, model.Banner{"image": "a.png", "link": "/sale"}).
			Return(&mongo.InsertOneResult{InsertedID: oid, Acknowledged: true}, nil)

		got, err := repo.Create(context.Background(), model.Banner{"_id": "mine", "image": "a.png", "link": "/sale"})
		require.NoError(t, err)
		assert.Equal(t, &model.InsertResult{Acknowledged: true, InsertedID: oid.Hex()}, got)
	})

	t.Run("Insert error maps to database error", func(t *testing.T) {
		repo, collection := setupBannerTest(t)
		before := testutil.ToFloat64(prometheus_metrics.DatabaseQueriesTotal.WithLabelValues("banner_create", "false"))
		collection.On("InsertOne", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key"))

		got, err := repo.Create(context.Background(), model.Banner{"image": "a.png"})
		assert.Nil(t, got)
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		assert.Equal(t, before+1, testutil.ToFloat64(prometheus_metrics.DatabaseQueriesTotal.WithLabelValues("banner_create", "false")))
	})
}

func TestBannerRepository_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, collection := setupBannerTest(t)
		oid := bson.NewObjectID()
		cursor, err := mongo.NewCursorFromDocuments([]any{
			bson.D{{Key: "_id", Value: oid}, {Key: "image", Value: "a.png"}},
		}, nil, nil)
		require.NoError(t, err)
		before := testutil.ToFloat64(prometheus_metrics.DatabaseQueriesTotal.WithLabelValues("banner_list", "true"))
		collection.On("Find", mock.Anything, bson.M{}).Return(cursor, nil)

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, oid.Hex(), got[0].ID())
		assert.Equal(t, "a.png", got[0]["image"])
		assert.Equal(t, before+1, testutil.ToFloat64(prometheus_metrics.DatabaseQueriesTotal.WithLabelValues("banner_list", "true")))
	})

	t.Run("Empty collection", func(t *testing.T) {
		repo, collection := setupBannerTest(t)
		cursor, err := mongo.NewCursorFromDocuments(nil, nil, nil)
		require.NoError(t, err)
		collection.On("Find", mock.Anything, bson.M{}).Return(cursor, nil)

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Find error", func(t *testing.T) {
		repo, collection := setupBannerTest(t)
		collection.On("Find", mock.Anything, bson.M{}).Return(nil, errors.New("server selection timeout"))

		got, err := repo.List(context.Background())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})

	t.Run("Decode error", func(t *testing.T) {
		repo, collection := setupBannerTest(t)
		registry := bson.NewRegistry()
		registry.RegisterTypeDecoder(reflect.TypeOf(model.Banner{}), bson.ValueDecoderFunc(
			func(bson.DecodeContext, bson.ValueReader, reflect.Value) error {
				return errors.New("cannot decode document")
			}))
		cursor, err := mongo.NewCursorFromDocuments([]any{bson.D{{Key: "image", Value: "a.png"}}}, nil, registry)
		require.NoError(t, err)
		collection.On("Find", mock.Anything, bson.M{}).Return(cursor, nil)

		got, err := repo.List(context.Background())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}
