package usecase

import (
	"context"

	"orchid/internal/domain/entity"
)

// CatalogUsecase serves the public product listing and detail views.
type CatalogUsecase interface {
	List(ctx context.Context) ([]entity.Orchid, error)
	Get(ctx context.Context, id string) (*entity.Orchid, error)
	Categories(ctx context.Context) ([]entity.Category, error)
}
