// Package usecase defines the application-facing interfaces of the client.
package usecase

import (
	"context"

	"orchid/internal/domain/entity"
)

// CartUsecase maintains the authoritative in-memory cart for the session and
// mirrors every mutation into the persistent store before returning.
type CartUsecase interface {
	// Items returns a snapshot of the cart lines in display order.
	Items() []entity.CartLine

	// AddItem merges quantity into an existing line with the same product id
	// or appends a new line. Quantities below 1 are rejected.
	AddItem(ctx context.Context, product entity.Orchid, quantity int) error

	// RemoveItem deletes the matching line. A missing id is a no-op.
	RemoveItem(ctx context.Context, productID string) error

	// UpdateQuantity adds delta to the matching line's quantity; a result of
	// zero or below removes the line. A missing id is a no-op.
	UpdateQuantity(ctx context.Context, productID string, delta int) error

	// Clear empties the cart and removes the persisted record entirely.
	Clear(ctx context.Context) error

	// Subtotal sums unit price times quantity over all lines. Pure.
	Subtotal() float64

	// Len returns the number of distinct lines.
	Len() int
}
