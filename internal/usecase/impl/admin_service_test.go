package impl

import (
	"context"
	"testing"

	"orchid/internal/domain/entity"
	domainerrors "orchid/internal/domain/errors"
	"orchid/internal/domain/service"
	"orchid/internal/domain/storage"
	infrastorage "orchid/internal/infra/storage"
	mockService "orchid/internal/mocks/service"
	"orchid/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service    usecase.AdminUsecase
	store      storage.Store
	accounts   *mockService.MockAccountAPI
	categories *mockService.MockCategoryAPI
	catalog    *mockService.MockCatalogAPI
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	t.Helper()

	store := infrastorage.NewMem()
	accounts := mockService.NewMockAccountAPI(t)
	categories := mockService.NewMockCategoryAPI(t)
	catalog := mockService.NewMockCatalogAPI(t)

	session := NewSessionService(store, accounts, &recordingNotifier{}, newDiscardLogger())
	svc := NewAdminService(session, accounts, categories, catalog, newDiscardLogger())

	return adminServiceFixtures{
		service:    svc,
		store:      store,
		accounts:   accounts,
		categories: categories,
		catalog:    catalog,
	}
}

func seedAdminSession(t *testing.T, store storage.Store) {
	t.Helper()

	seedSession(t, store, entity.Account{ID: "acc-9", Name: "Admin", Role: entity.RoleAdmin})
}

func TestAdminService_GuardBlocksNonAdmins(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		seed    func(t *testing.T, store storage.Store)
		wantErr error
	}{
		{
			name:    "anonymous",
			seed:    func(*testing.T, storage.Store) {},
			wantErr: domainerrors.ErrLoginRequired,
		},
		{
			name: "regular user",
			seed: func(t *testing.T, store storage.Store) {
				seedSession(t, store, entity.Account{ID: "acc-1", Role: entity.RoleUser})
			},
			wantErr: domainerrors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)
			tt.seed(t, fx.store)

			_, err := fx.service.ListAccounts(ctx)
			assert.ErrorIs(t, err, tt.wantErr)

			err = fx.service.DeleteOrchid(ctx, "orc-1")
			assert.ErrorIs(t, err, tt.wantErr)

			err = fx.service.CreateCategory(ctx, "Vanda")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdminService_ListAccounts(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	expected := []entity.Account{
		{ID: "acc-1", Name: "Mai", Email: "mai@example.com", Role: entity.RoleUser},
	}
	fx.accounts.EXPECT().
		ListAccounts(ctx).
		Return(expected, nil)

	accounts, err := fx.service.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, accounts)
}

func TestAdminService_CreateAccount(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	fx.accounts.EXPECT().
		CreateAccount(ctx, service.AccountRequest{
			Name:     "Mai",
			Email:    "mai@example.com",
			Password: "secret123",
			Role:     entity.RoleUser,
		}).
		Return(nil)

	err := fx.service.CreateAccount(ctx, usecase.AccountForm{
		Name:     "Mai",
		Email:    "mai@example.com",
		Password: "secret123",
		Role:     entity.RoleUser,
	})
	require.NoError(t, err)
}

func TestAdminService_CreateAccount_RequiresPassword(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	err := fx.service.CreateAccount(ctx, usecase.AccountForm{
		Name:  "Mai",
		Email: "mai@example.com",
		Role:  entity.RoleUser,
	})
	assert.Error(t, err)
}

func TestAdminService_UpdateAccount_PasswordOptional(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	fx.accounts.EXPECT().
		UpdateAccount(ctx, "acc-1", service.AccountRequest{
			Name:  "Mai",
			Email: "mai@example.com",
			Role:  entity.RoleAdmin,
		}).
		Return(nil)

	err := fx.service.UpdateAccount(ctx, "acc-1", usecase.AccountForm{
		Name:  "Mai",
		Email: "mai@example.com",
		Role:  entity.RoleAdmin,
	})
	require.NoError(t, err)
}

func TestAdminService_DeleteAccount(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	fx.accounts.EXPECT().
		DeleteAccount(ctx, "acc-1").
		Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, "acc-1"))
}

func TestAdminService_CategoryCRUD(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	fx.categories.EXPECT().
		ListCategories(ctx).
		Return([]entity.Category{{ID: "cat-1", Name: "Vanda"}}, nil)
	fx.categories.EXPECT().
		CreateCategory(ctx, "Cattleya").
		Return(nil)
	fx.categories.EXPECT().
		UpdateCategory(ctx, "cat-1", "Vanda hybrids").
		Return(nil)
	fx.categories.EXPECT().
		DeleteCategory(ctx, "cat-1").
		Return(nil)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	require.NoError(t, fx.service.CreateCategory(ctx, "Cattleya"))
	require.NoError(t, fx.service.UpdateCategory(ctx, "cat-1", "Vanda hybrids"))
	require.NoError(t, fx.service.DeleteCategory(ctx, "cat-1"))
}

func TestAdminService_CreateCategory_BlankName(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	assert.Error(t, fx.service.CreateCategory(ctx, "   "))
	assert.Error(t, fx.service.UpdateCategory(ctx, "cat-1", ""))
}

func TestAdminService_CreateOrchid(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	fx.catalog.EXPECT().
		CreateOrchid(ctx, entity.Orchid{
			Name:      "Phalaenopsis",
			ImageURL:  "https://img.example.com/orc-1.jpg",
			Price:     120000,
			Natural:   true,
			Available: true,
			Category:  &entity.Category{ID: "cat-1"},
		}).
		Return(nil)

	err := fx.service.CreateOrchid(ctx, usecase.OrchidForm{
		Name:       "Phalaenopsis",
		ImageURL:   "https://img.example.com/orc-1.jpg",
		Price:      120000,
		Natural:    true,
		CategoryID: "cat-1",
	})
	require.NoError(t, err)
}

func TestAdminService_CreateOrchid_InvalidForm(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	tests := []struct {
		name string
		form usecase.OrchidForm
	}{
		{
			name: "missing name",
			form: usecase.OrchidForm{ImageURL: "https://img.example.com/x.jpg", Price: 100, CategoryID: "cat-1"},
		},
		{
			name: "bad image url",
			form: usecase.OrchidForm{Name: "X", ImageURL: "not-a-url", Price: 100, CategoryID: "cat-1"},
		},
		{
			name: "zero price",
			form: usecase.OrchidForm{Name: "X", ImageURL: "https://img.example.com/x.jpg", CategoryID: "cat-1"},
		},
		{
			name: "missing category",
			form: usecase.OrchidForm{Name: "X", ImageURL: "https://img.example.com/x.jpg", Price: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, fx.service.CreateOrchid(ctx, tt.form))
		})
	}
}

func TestAdminService_UpdateOrchid(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seedAdminSession(t, fx.store)

	fx.catalog.EXPECT().
		UpdateOrchid(ctx, "orc-1", entity.Orchid{
			Name:      "Phalaenopsis",
			ImageURL:  "https://img.example.com/orc-1.jpg",
			Price:     99000,
			Available: true,
			Category:  &entity.Category{ID: "cat-2"},
		}).
		Return(nil)

	err := fx.service.UpdateOrchid(ctx, "orc-1", usecase.OrchidForm{
		Name:       "Phalaenopsis",
		ImageURL:   "https://img.example.com/orc-1.jpg",
		Price:      99000,
		CategoryID: "cat-2",
	})
	require.NoError(t, err)
}
