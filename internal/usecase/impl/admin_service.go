package impl

import (
	"context"
	"log/slog"
	"strings"

	"orchid/internal/domain/entity"
	"orchid/internal/domain/service"
	"orchid/internal/errors"
	"orchid/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// adminService implements the AdminUsecase interface. Every operation runs
// the admin role gate before touching the backend, so a demoted or expired
// session fails locally with a navigation signal instead of a backend 403.
type adminService struct {
	session    usecase.SessionUsecase
	accounts   service.AccountAPI
	categories service.CategoryAPI
	catalog    service.CatalogAPI
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	session usecase.SessionUsecase,
	accounts service.AccountAPI,
	categories service.CategoryAPI,
	catalog service.CatalogAPI,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		session:    session,
		accounts:   accounts,
		categories: categories,
		catalog:    catalog,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
	}
}

func (srv *adminService) guard(ctx context.Context) error {
	return srv.session.RequireRole(ctx, entity.RoleAdmin)
}

func (srv *adminService) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	if err := srv.guard(ctx); err != nil {
		return nil, err
	}

	accounts, err := srv.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}

	return accounts, nil
}

func (srv *adminService) CreateAccount(ctx context.Context, form usecase.AccountForm) error {
	if err := srv.guard(ctx); err != nil {
		return err
	}
	if err := srv.validate.Struct(form); err != nil {
		return errors.Wrap(err, "invalid account form")
	}
	if form.Password == "" {
		return errors.New("password is required for new accounts")
	}

	return srv.accounts.CreateAccount(ctx, service.AccountRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
}

func (srv *adminService) UpdateAccount(ctx context.Context, id string, form usecase.AccountForm) error {
	if err := srv.guard(ctx); err != nil {
		return err
	}
	if err := srv.validate.Struct(form); err != nil {
		return errors.Wrap(err, "invalid account form")
	}

	return srv.accounts.UpdateAccount(ctx, id, service.AccountRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
}

func (srv *adminService) DeleteAccount(ctx context.Context, id string) error {
	if err := srv.guard(ctx); err != nil {
		return err
	}

	return srv.accounts.DeleteAccount(ctx, id)
}

func (srv *adminService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if err := srv.guard(ctx); err != nil {
		return nil, err
	}

	categories, err := srv.categories.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	return categories, nil
}

func (srv *adminService) CreateCategory(ctx context.Context, name string) error {
	if err := srv.guard(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("category name is required")
	}

	return srv.categories.CreateCategory(ctx, name)
}

func (srv *adminService) UpdateCategory(ctx context.Context, id, name string) error {
	if err := srv.guard(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("category name is required")
	}

	return srv.categories.UpdateCategory(ctx, id, name)
}

func (srv *adminService) DeleteCategory(ctx context.Context, id string) error {
	if err := srv.guard(ctx); err != nil {
		return err
	}

	return srv.categories.DeleteCategory(ctx, id)
}

func (srv *adminService) CreateOrchid(ctx context.Context, form usecase.OrchidForm) error {
	if err := srv.guard(ctx); err != nil {
		return err
	}
	if err := srv.validate.Struct(form); err != nil {
		return errors.Wrap(err, "invalid orchid form")
	}

	return srv.catalog.CreateOrchid(ctx, orchidFromForm(form))
}

func (srv *adminService) UpdateOrchid(ctx context.Context, id string, form usecase.OrchidForm) error {
	if err := srv.guard(ctx); err != nil {
		return err
	}
	if err := srv.validate.Struct(form); err != nil {
		return errors.Wrap(err, "invalid orchid form")
	}

	return srv.catalog.UpdateOrchid(ctx, id, orchidFromForm(form))
}

func (srv *adminService) DeleteOrchid(ctx context.Context, id string) error {
	if err := srv.guard(ctx); err != nil {
		return err
	}

	return srv.catalog.DeleteOrchid(ctx, id)
}

func orchidFromForm(form usecase.OrchidForm) entity.Orchid {
	return entity.Orchid{
		Name:        form.Name,
		Description: form.Description,
		ImageURL:    form.ImageURL,
		Price:       form.Price,
		Natural:     form.Natural,
		Available:   true,
		Category:    &entity.Category{ID: form.CategoryID},
	}
}
