// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"orchid/internal/domain/entity"
	domainerrors "orchid/internal/domain/errors"
	"orchid/internal/domain/storage"
	"orchid/internal/errors"
	"orchid/internal/notify"
	"orchid/internal/usecase"
)

// cartService implements the CartUsecase interface. Every mutation is
// mirrored into the store before the call returns (write-through); the
// persisted record is the JSON array of cart lines under the cartItems key.
// Mutations are applied to a copy and committed only after the store write
// succeeds, so a failed write leaves memory and storage in agreement.
type cartService struct {
	store    storage.Store
	notifier notify.Notifier
	logger   *slog.Logger

	mu   sync.Mutex
	cart *entity.Cart
}

// NewCartService is the constructor for cartService. It hydrates the cart
// from the store; a missing record or one that fails to parse yields a
// fresh empty cart rather than an error.
func NewCartService(
	ctx context.Context,
	store storage.Store,
	notifier notify.Notifier,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		cart:     hydrate(ctx, store, logger),
	}
}

func hydrate(ctx context.Context, store storage.Store, logger *slog.Logger) *entity.Cart {
	data, err := store.Get(ctx, storage.KeyCartItems)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logger.Warn("failed to read persisted cart, starting empty", slog.Any("error", err))
		}

		return entity.NewCart(nil)
	}

	var lines []entity.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		logger.Warn("persisted cart is malformed, starting empty", slog.Any("error", err))

		return entity.NewCart(nil)
	}

	return entity.NewCart(lines)
}

func (srv *cartService) Items() []entity.CartLine {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.cart.Lines()
}

func (srv *cartService) AddItem(ctx context.Context, product entity.Orchid, quantity int) error {
	if quantity < 1 {
		return errors.Wrapf(domainerrors.ErrInvalidQuantity, "quantity %d", quantity)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	next := entity.NewCart(srv.cart.Lines())
	merged := next.Add(entity.NewCartLine(product, quantity))
	if err := srv.persist(ctx, next); err != nil {
		return err
	}
	srv.cart = next

	if merged {
		srv.notifier.Success(fmt.Sprintf("Updated %s quantity", product.Name))
	} else {
		srv.notifier.Success(fmt.Sprintf("%s added to cart!", product.Name))
	}

	return nil
}

func (srv *cartService) RemoveItem(ctx context.Context, productID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	next := entity.NewCart(srv.cart.Lines())
	if !next.Remove(productID) {
		return nil
	}
	if err := srv.persist(ctx, next); err != nil {
		return err
	}
	srv.cart = next

	srv.notifier.Info("Item removed from cart")

	return nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, productID string, delta int) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	next := entity.NewCart(srv.cart.Lines())
	found, removed := next.Adjust(productID, delta)
	if !found {
		return nil
	}
	if err := srv.persist(ctx, next); err != nil {
		return err
	}
	srv.cart = next

	if removed {
		srv.notifier.Info("Item removed from cart")
	}

	return nil
}

func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	// Clearing removes the persisted record entirely rather than writing an
	// empty array; hydration treats the absent key as an empty cart.
	if err := srv.store.Delete(ctx, storage.KeyCartItems); err != nil {
		return errors.Wrap(err, "remove persisted cart")
	}
	srv.cart.Clear()

	return nil
}

func (srv *cartService) Subtotal() float64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.cart.Subtotal()
}

func (srv *cartService) Len() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.cart.Len()
}

// persist mirrors the given cart into the store. Callers hold srv.mu.
func (srv *cartService) persist(ctx context.Context, cart *entity.Cart) error {
	data, err := json.Marshal(cart.Lines())
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}
	if err := srv.store.Put(ctx, storage.KeyCartItems, data); err != nil {
		return errors.Wrap(err, "persist cart")
	}

	return nil
}
