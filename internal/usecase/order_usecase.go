package usecase

import (
	"context"

	"orchid/internal/domain/entity"
)

// CheckoutForm is the checkout input. The shipping address is required; the
// note is free text.
type CheckoutForm struct {
	ShippingAddress string `validate:"required"`
	Note            string
}

// OrderUsecase runs the checkout pipeline and the order reads.
//
// Checkout is the single point where the optimistic local cart is reconciled
// against the backend: every line is re-validated against the live catalog
// and any drift aborts the submission with a CartConflictError before
// anything is sent.
type OrderUsecase interface {
	// Quote prices the current cart: subtotal, shipping fee, total.
	Quote() entity.OrderQuote

	// Checkout validates the form, reconciles the cart, submits the order
	// with a fresh idempotency key and clears the cart on success.
	Checkout(ctx context.Context, form CheckoutForm) (*entity.OrderConfirmation, error)

	// History lists the caller's orders. Requires authentication.
	History(ctx context.Context) ([]entity.Order, error)

	// Detail fetches one order. Requires authentication.
	Detail(ctx context.Context, id string) (*entity.Order, error)

	// UpdateStatus transitions an order's status. Requires the admin role.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
