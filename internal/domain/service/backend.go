// Package service defines the interfaces for external collaborators the
// usecases depend on, implemented under internal/infra.
package service

import (
	"context"

	"orchid/internal/domain/entity"
)

// OrderLine is one cart line reduced to what the checkout endpoint needs.
type OrderLine struct {
	OrchidID string `json:"orchidId"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the checkout submission payload. IdempotencyKey is
// generated fresh per submission attempt so a retried request after a flaky
// success cannot create a duplicate order.
type CreateOrderRequest struct {
	Items           []OrderLine `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
	Note            string      `json:"note"`
	IdempotencyKey  string      `json:"-"`
}

// AccountRequest is the account create/update payload. Role is only honored
// by the admin endpoints.
type AccountRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role,omitempty"`
}

// CatalogAPI covers the public catalog reads plus the admin product CRUD.
type CatalogAPI interface {
	ListOrchids(ctx context.Context) ([]entity.Orchid, error)
	GetOrchid(ctx context.Context, id string) (*entity.Orchid, error)

	CreateOrchid(ctx context.Context, o entity.Orchid) error
	UpdateOrchid(ctx context.Context, id string, o entity.Orchid) error
	DeleteOrchid(ctx context.Context, id string) error
}

// OrderAPI covers checkout submission and order reads.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (orderID string, err error)
	MyOrders(ctx context.Context) ([]entity.Order, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error
}

// AccountAPI covers login, registration and the admin account CRUD.
type AccountAPI interface {
	Login(ctx context.Context, email, password string) (token string, account *entity.Account, err error)
	CreateAccount(ctx context.Context, req AccountRequest) error
	ListAccounts(ctx context.Context) ([]entity.Account, error)
	UpdateAccount(ctx context.Context, id string, req AccountRequest) error
	DeleteAccount(ctx context.Context, id string) error
}

// CategoryAPI covers the category CRUD.
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, name string) error
	UpdateCategory(ctx context.Context, id, name string) error
	DeleteCategory(ctx context.Context, id string) error
}

// QRCodeService renders shareable order-confirmation QR codes.
type QRCodeService interface {
	GenerateOrderQR(orderID string) ([]byte, error)
}
