package impl

import (
	"context"
	"log/slog"

	"orchid/internal/domain/entity"
	"orchid/internal/domain/service"
	"orchid/internal/errors"
	"orchid/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog    service.CatalogAPI
	categories service.CategoryAPI
	logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	catalog service.CatalogAPI,
	categories service.CategoryAPI,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalog:    catalog,
		categories: categories,
		logger:     logger,
	}
}

func (srv *catalogService) List(ctx context.Context) ([]entity.Orchid, error) {
	orchids, err := srv.catalog.ListOrchids(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orchids")
	}

	srv.logger.Debug("fetched catalog listing", slog.Int("count", len(orchids)))

	return orchids, nil
}

func (srv *catalogService) Get(ctx context.Context, id string) (*entity.Orchid, error) {
	orchid, err := srv.catalog.GetOrchid(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get orchid %s", id)
	}

	return orchid, nil
}

func (srv *catalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.categories.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	return categories, nil
}
