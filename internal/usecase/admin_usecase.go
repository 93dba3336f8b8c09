package usecase

import (
	"context"

	"orchid/internal/domain/entity"
)

// OrchidForm is the admin product create/update input.
type OrchidForm struct {
	Name        string `validate:"required"`
	Description string
	ImageURL    string  `validate:"required,url"`
	Price       float64 `validate:"required,gt=0"`
	Natural     bool
	CategoryID  string `validate:"required"`
}

// AccountForm is the admin account create/update input.
type AccountForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"omitempty,min=6"`
	Role     entity.Role
}

// AdminUsecase is the back office: every operation checks the admin role
// through the session guard before touching the backend.
type AdminUsecase interface {
	ListAccounts(ctx context.Context) ([]entity.Account, error)
	CreateAccount(ctx context.Context, form AccountForm) error
	UpdateAccount(ctx context.Context, id string, form AccountForm) error
	DeleteAccount(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, name string) error
	UpdateCategory(ctx context.Context, id, name string) error
	DeleteCategory(ctx context.Context, id string) error

	CreateOrchid(ctx context.Context, form OrchidForm) error
	UpdateOrchid(ctx context.Context, id string, form OrchidForm) error
	DeleteOrchid(ctx context.Context, id string) error
}
