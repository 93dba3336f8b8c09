package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"orchid/internal/domain/entity"
	domainerrors "orchid/internal/domain/errors"
	"orchid/internal/domain/service"
	"orchid/internal/domain/storage"
	"orchid/internal/errors"
	"orchid/internal/infra/auth"
	"orchid/internal/notify"
	"orchid/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// sessionService implements the SessionUsecase interface. Authentication
// state is derived purely from the persisted token and user record; the
// guard methods never touch the network.
type sessionService struct {
	store    storage.Store
	accounts service.AccountAPI
	notifier notify.Notifier
	validate *validator.Validate
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	store storage.Store,
	accounts service.AccountAPI,
	notifier notify.Notifier,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		store:    store,
		accounts: accounts,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (srv *sessionService) Login(ctx context.Context, email, password string) (*entity.Account, error) {
	token, account, err := srv.accounts.Login(ctx, email, password)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}

	if err := srv.store.Put(ctx, storage.KeyToken, []byte(token)); err != nil {
		return nil, errors.Wrap(err, "persist token")
	}

	record, err := json.Marshal(account)
	if err != nil {
		return nil, errors.Wrap(err, "encode user record")
	}
	if err := srv.store.Put(ctx, storage.KeyUser, record); err != nil {
		return nil, errors.Wrap(err, "persist user record")
	}

	srv.notifier.Success("Login successful!")

	return account, nil
}

func (srv *sessionService) Register(ctx context.Context, form usecase.RegisterForm) error {
	if err := srv.validate.Struct(form); err != nil {
		return errors.Wrap(err, "invalid registration form")
	}

	if err := srv.accounts.CreateAccount(ctx, service.AccountRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	}); err != nil {
		return errors.Wrap(err, "register account")
	}

	srv.notifier.Success("Account created. You can now log in.")

	return nil
}

func (srv *sessionService) Logout(ctx context.Context) error {
	// Both keys go; the store broadcasts each deletion so observers like the
	// status line re-derive their authentication display.
	err := errors.Join(
		srv.store.Delete(ctx, storage.KeyToken),
		srv.store.Delete(ctx, storage.KeyUser),
	)
	if err != nil {
		return errors.Wrap(err, "clear session")
	}

	srv.notifier.Info("Logged out")

	return nil
}

func (srv *sessionService) IsAuthenticated(ctx context.Context) bool {
	token, err := srv.store.Get(ctx, storage.KeyToken)

	return err == nil && len(token) > 0
}

func (srv *sessionService) CurrentAccount(ctx context.Context) (*entity.Account, error) {
	record, err := srv.store.Get(ctx, storage.KeyUser)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			srv.logger.Warn("failed to read user record", slog.Any("error", err))
		}

		return nil, domainerrors.ErrLoginRequired
	}

	var account entity.Account
	if err := json.Unmarshal(record, &account); err != nil {
		// A malformed record means "no session", never a crash.
		srv.logger.Warn("persisted user record is malformed", slog.Any("error", err))

		return nil, domainerrors.ErrLoginRequired
	}

	return &account, nil
}

func (srv *sessionService) CurrentRole(ctx context.Context) entity.Role {
	account, err := srv.CurrentAccount(ctx)
	if err != nil {
		return entity.RoleUnknown
	}

	return account.Role
}

func (srv *sessionService) RequireAuthenticated(ctx context.Context) error {
	if !srv.IsAuthenticated(ctx) {
		return domainerrors.ErrLoginRequired
	}

	return nil
}

func (srv *sessionService) RequireRole(ctx context.Context, role entity.Role) error {
	if err := srv.RequireAuthenticated(ctx); err != nil {
		return err
	}

	if srv.CurrentRole(ctx) != role {
		return errors.Wrapf(domainerrors.ErrPermissionDenied, "require %s role", role)
	}

	return nil
}

func (srv *sessionService) TokenClaims(ctx context.Context) (*entity.TokenInfo, error) {
	token, err := srv.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return nil, domainerrors.ErrLoginRequired
	}

	return auth.InspectToken(string(token))
}
