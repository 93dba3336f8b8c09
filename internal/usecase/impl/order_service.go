package impl

import (
	"context"
	"fmt"
	"log/slog"

	"orchid/config"
	"orchid/internal/domain/entity"
	domainerrors "orchid/internal/domain/errors"
	"orchid/internal/domain/service"
	"orchid/internal/errors"
	"orchid/internal/notify"
	"orchid/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	cart     usecase.CartUsecase
	session  usecase.SessionUsecase
	catalog  service.CatalogAPI
	orders   service.OrderAPI
	shipping *config.ShippingConfig
	notifier notify.Notifier
	validate *validator.Validate
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	cfg *config.Config,
	cart usecase.CartUsecase,
	session usecase.SessionUsecase,
	catalog service.CatalogAPI,
	orders service.OrderAPI,
	notifier notify.Notifier,
	logger *slog.Logger,
) usecase.OrderUsecase {
	shipping := cfg.Shipping
	if shipping == nil {
		shipping = config.DefaultShipping()
	}

	return &orderService{
		cart:     cart,
		session:  session,
		catalog:  catalog,
		orders:   orders,
		shipping: shipping,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (srv *orderService) Quote() entity.OrderQuote {
	subtotal := srv.cart.Subtotal()

	fee := srv.shipping.FlatFee
	if subtotal > srv.shipping.FreeThreshold {
		fee = 0
	}

	return entity.OrderQuote{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
	}
}

func (srv *orderService) Checkout(ctx context.Context, form usecase.CheckoutForm) (*entity.OrderConfirmation, error) {
	if err := srv.validate.Struct(form); err != nil {
		return nil, errors.Wrap(err, "invalid checkout form")
	}
	if err := srv.session.RequireAuthenticated(ctx); err != nil {
		return nil, err
	}

	lines := srv.cart.Items()
	if len(lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	if err := srv.reconcile(ctx, lines); err != nil {
		return nil, err
	}

	quote := srv.Quote()

	req := service.CreateOrderRequest{
		Items:           make([]service.OrderLine, 0, len(lines)),
		ShippingAddress: form.ShippingAddress,
		Note:            form.Note,
		// Fresh key per submission attempt so a retried request after a
		// flaky success cannot create a duplicate order.
		IdempotencyKey: uuid.New().String(),
	}
	for _, line := range lines {
		req.Items = append(req.Items, service.OrderLine{
			OrchidID: line.ProductID,
			Quantity: line.Quantity,
		})
	}

	orderID, err := srv.orders.CreateOrder(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "submit order")
	}

	srv.notifier.Success(fmt.Sprintf("Order #%s created successfully!", orderID))

	// The order now exists server-side; a failed local clear must not fail
	// the checkout.
	if err := srv.cart.Clear(ctx); err != nil {
		srv.logger.Warn("failed to clear cart after checkout", slog.Any("error", err))
	}

	return &entity.OrderConfirmation{OrderID: orderID, Quote: quote}, nil
}

// reconcile re-validates every cart line against the live catalog. Any drift
// aborts the checkout with a CartConflictError listing all discrepancies;
// the client snapshot is never silently trusted.
func (srv *orderService) reconcile(ctx context.Context, lines []entity.CartLine) error {
	var discrepancies []domainerrors.Discrepancy

	for _, line := range lines {
		current, err := srv.catalog.GetOrchid(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				discrepancies = append(discrepancies, domainerrors.Discrepancy{
					ProductID: line.ProductID,
					Name:      line.Name,
					Kind:      domainerrors.NotFound,
					CartPrice: line.UnitPrice,
				})

				continue
			}

			return errors.Wrapf(err, "validate cart line %s", line.ProductID)
		}

		switch {
		case !current.Available:
			discrepancies = append(discrepancies, domainerrors.Discrepancy{
				ProductID: line.ProductID,
				Name:      line.Name,
				Kind:      domainerrors.Unavailable,
				CartPrice: line.UnitPrice,
			})
		case current.Price != line.UnitPrice:
			discrepancies = append(discrepancies, domainerrors.Discrepancy{
				ProductID:    line.ProductID,
				Name:         line.Name,
				Kind:         domainerrors.PriceChanged,
				CartPrice:    line.UnitPrice,
				CurrentPrice: current.Price,
			})
		}
	}

	if len(discrepancies) > 0 {
		return &domainerrors.CartConflictError{Discrepancies: discrepancies}
	}

	return nil
}

func (srv *orderService) History(ctx context.Context) ([]entity.Order, error) {
	if err := srv.session.RequireAuthenticated(ctx); err != nil {
		return nil, err
	}

	orders, err := srv.orders.MyOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch order history")
	}

	return orders, nil
}

func (srv *orderService) Detail(ctx context.Context, id string) (*entity.Order, error) {
	if err := srv.session.RequireAuthenticated(ctx); err != nil {
		return nil, err
	}

	order, err := srv.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch order %s", id)
	}

	return order, nil
}

func (srv *orderService) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if err := srv.session.RequireRole(ctx, entity.RoleAdmin); err != nil {
		return err
	}
	if !status.IsValid() {
		return errors.Errorf("invalid order status %q", status)
	}

	if err := srv.orders.UpdateOrderStatus(ctx, id, status); err != nil {
		return errors.Wrapf(err, "update order %s status", id)
	}

	srv.notifier.Success(fmt.Sprintf("Order #%s is now %s", id, status))

	return nil
}
