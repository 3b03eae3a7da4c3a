package banner_repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "blog-service/internal/domain/models"
	banner_repository "blog-service/internal/domain/ports/output/banner"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/repository/banner/memory"
)

func setupBannerTest(t *testing.T) (banner_repository.Repository, func()) {
	log := logger.New("test")
	repo := memory.NewBannerRepository(log)
	return repo, func() {}
}

func TestBannerRepository_CreateThenList(t *testing.T) {
	repo, cleanup := setupBannerTest(t)
	defer cleanup()

	banner := model.Banner{
		"image":  "https://example.com/banner.png",
		"active": true,
		"meta":   map[string]any{"campaign": "spring"},
	}

	res, err := repo.Create(context.Background(), banner)
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	require.NotEmpty(t, res.InsertedID)

	banners, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, banners, 1)

	assert.Equal(t, res.InsertedID, banners[0].ID())
	assert.Equal(t, "https://example.com/banner.png", banners[0]["image"])
	assert.Equal(t, true, banners[0]["active"])
	assert.Equal(t, map[string]any{"campaign": "spring"}, banners[0]["meta"])
}

func TestBannerRepository_CreateDoesNotMutateInput(t *testing.T) {
	repo, cleanup := setupBannerTest(t)
	defer cleanup()

	banner := model.Banner{"_id": "mine", "title": "Sale"}

	res, err := repo.Create(context.Background(), banner)
	require.NoError(t, err)

	assert.Equal(t, "mine", banner["_id"])
	assert.NotEqual(t, "mine", res.InsertedID)
}

func TestBannerRepository_ListEmpty(t *testing.T) {
	repo, cleanup := setupBannerTest(t)
	defer cleanup()

	banners, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, banners)
	assert.Empty(t, banners)
}
