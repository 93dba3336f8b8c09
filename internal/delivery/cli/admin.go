package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"orchid/internal/domain/entity"
	"orchid/internal/usecase"

	"go.uber.org/fx"
)

// AdminParams defines the parameters required for the admin console views.
type AdminParams struct {
	fx.In

	Admin  usecase.AdminUsecase
	Orders usecase.OrderUsecase
	Logger *slog.Logger
}

// AdminConsole handles the back-office commands. Role enforcement lives in
// the usecases; the console only renders.
type AdminConsole struct {
	admin  usecase.AdminUsecase
	orders usecase.OrderUsecase
	logger *slog.Logger
	out    io.Writer
}

// NewAdminConsole is the constructor for AdminConsole.
func NewAdminConsole(params AdminParams) *AdminConsole {
	return &AdminConsole{
		admin:  params.Admin,
		orders: params.Orders,
		logger: params.Logger,
		out:    os.Stdout,
	}
}

// SetOutput redirects rendering, used by tests.
func (a *AdminConsole) SetOutput(w io.Writer) {
	a.out = w
}

func (a *AdminConsole) Accounts(ctx context.Context) error {
	accounts, err := a.admin.ListAccounts(ctx)
	if err != nil {
		return err
	}

	renderAccounts(a.out, accounts)

	return nil
}

func (a *AdminConsole) CreateAccount(ctx context.Context, form usecase.AccountForm) error {
	if err := a.admin.CreateAccount(ctx, form); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s created.\n", form.Email)

	return nil
}

func (a *AdminConsole) UpdateAccount(ctx context.Context, id string, form usecase.AccountForm) error {
	if err := a.admin.UpdateAccount(ctx, id, form); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s updated.\n", id)

	return nil
}

func (a *AdminConsole) DeleteAccount(ctx context.Context, id string) error {
	if err := a.admin.DeleteAccount(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s deleted.\n", id)

	return nil
}

func (a *AdminConsole) Categories(ctx context.Context) error {
	categories, err := a.admin.ListCategories(ctx)
	if err != nil {
		return err
	}

	renderCategories(a.out, categories)

	return nil
}

func (a *AdminConsole) CreateCategory(ctx context.Context, name string) error {
	if err := a.admin.CreateCategory(ctx, name); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Category %q created.\n", name)

	return nil
}

func (a *AdminConsole) UpdateCategory(ctx context.Context, id, name string) error {
	if err := a.admin.UpdateCategory(ctx, id, name); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Category %s renamed to %q.\n", id, name)

	return nil
}

func (a *AdminConsole) DeleteCategory(ctx context.Context, id string) error {
	if err := a.admin.DeleteCategory(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Category %s deleted.\n", id)

	return nil
}

func (a *AdminConsole) CreateOrchid(ctx context.Context, form usecase.OrchidForm) error {
	if err := a.admin.CreateOrchid(ctx, form); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Orchid %q created.\n", form.Name)

	return nil
}

func (a *AdminConsole) UpdateOrchid(ctx context.Context, id string, form usecase.OrchidForm) error {
	if err := a.admin.UpdateOrchid(ctx, id, form); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Orchid %s updated.\n", id)

	return nil
}

func (a *AdminConsole) DeleteOrchid(ctx context.Context, id string) error {
	if err := a.admin.DeleteOrchid(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Orchid %s deleted.\n", id)

	return nil
}

func (a *AdminConsole) OrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return a.orders.UpdateStatus(ctx, id, status)
}
