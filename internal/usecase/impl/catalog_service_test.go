package impl

import (
	"context"
	"testing"

	"orchid/internal/domain/entity"
	domainerrors "orchid/internal/domain/errors"
	mockService "orchid/internal/mocks/service"
	"orchid/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service    usecase.CatalogUsecase
	catalog    *mockService.MockCatalogAPI
	categories *mockService.MockCategoryAPI
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	catalog := mockService.NewMockCatalogAPI(t)
	categories := mockService.NewMockCategoryAPI(t)
	svc := NewCatalogService(catalog, categories, newDiscardLogger())

	return catalogServiceFixtures{
		service:    svc,
		catalog:    catalog,
		categories: categories,
	}
}

func TestCatalogService_List(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	expected := []entity.Orchid{
		testOrchid("orc-1", "Phalaenopsis", 120000),
		testOrchid("orc-2", "Dendrobium", 95000),
	}
	fx.catalog.EXPECT().
		ListOrchids(ctx).
		Return(expected, nil)

	orchids, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, orchids)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().
		GetOrchid(ctx, "missing").
		Return(nil, domainerrors.ErrNotFound)

	_, err := fx.service.Get(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_Categories(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	expected := []entity.Category{{ID: "cat-1", Name: "Vanda"}}
	fx.categories.EXPECT().
		ListCategories(ctx).
		Return(expected, nil)

	categories, err := fx.service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}
