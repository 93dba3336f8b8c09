package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"orchid/config"
	domainerrors "orchid/internal/domain/errors"
	"orchid/internal/domain/service"
	"orchid/internal/errors"
	"orchid/internal/usecase"
	"orchid/internal/util"

	"go.uber.org/fx"
)

// StorefrontParams defines the parameters required for the storefront views.
type StorefrontParams struct {
	fx.In

	Config  *config.Config
	Session usecase.SessionUsecase
	Catalog usecase.CatalogUsecase
	Cart    usecase.CartUsecase
	Orders  usecase.OrderUsecase
	QRCode  service.QRCodeService
	Logger  *slog.Logger
}

// Storefront handles the customer-facing commands.
type Storefront struct {
	session  usecase.SessionUsecase
	catalog  usecase.CatalogUsecase
	cart     usecase.CartUsecase
	orders   usecase.OrderUsecase
	qrcode   service.QRCodeService
	currency string
	logger   *slog.Logger
	out      io.Writer

	// checkoutInFlight rejects a second submit while one is outstanding.
	checkoutInFlight atomic.Bool
}

// NewStorefront is the constructor for Storefront.
func NewStorefront(params StorefrontParams) *Storefront {
	shipping := params.Config.Shipping
	if shipping == nil {
		shipping = config.DefaultShipping()
	}

	return &Storefront{
		session:  params.Session,
		catalog:  params.Catalog,
		cart:     params.Cart,
		orders:   params.Orders,
		qrcode:   params.QRCode,
		currency: shipping.Currency,
		logger:   params.Logger,
		out:      os.Stdout,
	}
}

// SetOutput redirects rendering, used by tests.
func (s *Storefront) SetOutput(w io.Writer) {
	s.out = w
}

func (s *Storefront) Login(ctx context.Context, email, password string) error {
	account, err := s.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Signed in as %s (%s)\n", account.Name, account.Role)

	return nil
}

func (s *Storefront) Register(ctx context.Context, name, email, password string) error {
	return s.session.Register(ctx, usecase.RegisterForm{
		Name:     name,
		Email:    email,
		Password: password,
	})
}

func (s *Storefront) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}

func (s *Storefront) WhoAmI(ctx context.Context) error {
	account, err := s.session.CurrentAccount(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrLoginRequired) {
			fmt.Fprintln(s.out, "Not signed in.")

			return nil
		}

		return err
	}

	fmt.Fprintf(s.out, "%s <%s> role=%s\n", account.Name, account.Email, account.Role)

	if claims, err := s.session.TokenClaims(ctx); err == nil && claims.ExpiresAt > 0 {
		expires := time.Unix(claims.ExpiresAt, 0)
		if remaining := time.Until(expires); remaining > 0 {
			fmt.Fprintf(s.out, "Session expires in %s\n", util.FormatDuration(remaining))
		} else {
			fmt.Fprintln(s.out, "Session expired; log in again.")
		}
	}

	return nil
}

func (s *Storefront) Browse(ctx context.Context) error {
	orchids, err := s.catalog.List(ctx)
	if err != nil {
		return err
	}

	renderOrchids(s.out, orchids, s.currency)

	return nil
}

func (s *Storefront) Show(ctx context.Context, id string) error {
	orchid, err := s.catalog.Get(ctx, id)
	if err != nil {
		return err
	}

	renderOrchid(s.out, orchid, s.currency)

	return nil
}

// CartAdd resolves the product against the live catalog before adding, so a
// cart line always starts from a fresh snapshot.
func (s *Storefront) CartAdd(ctx context.Context, id string, quantity int) error {
	orchid, err := s.catalog.Get(ctx, id)
	if err != nil {
		return err
	}
	if !orchid.Available {
		return errors.Errorf("%s is currently unavailable", orchid.Name)
	}

	return s.cart.AddItem(ctx, *orchid, quantity)
}

func (s *Storefront) CartRemove(ctx context.Context, id string) error {
	return s.cart.RemoveItem(ctx, id)
}

func (s *Storefront) CartUpdate(ctx context.Context, id string, delta int) error {
	return s.cart.UpdateQuantity(ctx, id, delta)
}

func (s *Storefront) CartClear(ctx context.Context) error {
	return s.cart.Clear(ctx)
}

func (s *Storefront) CartShow(context.Context) error {
	renderCart(s.out, s.cart.Items(), s.orders.Quote(), s.currency)

	return nil
}

// Checkout submits the cart. Only one submission may be in flight at a time;
// retries stay manual.
func (s *Storefront) Checkout(ctx context.Context, address, note, qrPath string) error {
	if !s.checkoutInFlight.CompareAndSwap(false, true) {
		return errors.New("a checkout is already in progress")
	}
	defer s.checkoutInFlight.Store(false)

	confirmation, err := s.orders.Checkout(ctx, usecase.CheckoutForm{
		ShippingAddress: address,
		Note:            note,
	})
	if err != nil {
		var conflict *domainerrors.CartConflictError
		if errors.As(err, &conflict) {
			fmt.Fprintln(s.out, "The catalog changed since you filled your cart:")
			for _, d := range conflict.Discrepancies {
				fmt.Fprintf(s.out, "  - %s\n", d)
			}
			fmt.Fprintln(s.out, "Review your cart and try again.")
		}

		return err
	}

	fmt.Fprintf(s.out, "Order #%s placed.\n", confirmation.OrderID)
	fmt.Fprintf(s.out, "Total charged: %s\n", FormatPrice(confirmation.Quote.Total, s.currency))

	if qrPath != "" {
		if err := s.writeConfirmationQR(confirmation.OrderID, qrPath); err != nil {
			// The order exists either way; surface the QR failure without
			// failing the checkout.
			s.logger.Warn("failed to write confirmation QR", slog.Any("error", err))
			fmt.Fprintf(s.out, "Could not write QR code: %v\n", err)
		} else {
			fmt.Fprintf(s.out, "Tracking QR written to %s\n", qrPath)
		}
	}

	return nil
}

func (s *Storefront) writeConfirmationQR(orderID, path string) error {
	png, err := s.qrcode.GenerateOrderQR(orderID)
	if err != nil {
		return err
	}

	return os.WriteFile(path, png, 0o644)
}

func (s *Storefront) Orders(ctx context.Context) error {
	orders, err := s.orders.History(ctx)
	if err != nil {
		return err
	}

	renderOrders(s.out, orders, s.currency)

	return nil
}

func (s *Storefront) Order(ctx context.Context, id string) error {
	order, err := s.orders.Detail(ctx, id)
	if err != nil {
		return err
	}

	renderOrder(s.out, order, s.currency)

	return nil
}

func (s *Storefront) Categories(ctx context.Context) error {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return err
	}

	renderCategories(s.out, categories)

	return nil
}
