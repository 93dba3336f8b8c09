package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"orchid/internal/domain/storage"
	"orchid/internal/usecase"
)

// StatusLine is the terminal stand-in for the navigation bar: it shows who
// is signed in and how many lines the cart holds, and it re-renders itself
// whenever the store broadcasts a session or cart mutation. It observes the
// store directly rather than being told by the mutating code path.
type StatusLine struct {
	session usecase.SessionUsecase
	cart    usecase.CartUsecase

	mu  sync.Mutex
	out io.Writer
}

// NewStatusLine is the constructor for StatusLine.
func NewStatusLine(session usecase.SessionUsecase, cart usecase.CartUsecase, out io.Writer) *StatusLine {
	return &StatusLine{
		session: session,
		cart:    cart,
		out:     out,
	}
}

// Attach subscribes to the store and re-renders on every relevant mutation.
// The returned cancel detaches the observer.
func (l *StatusLine) Attach(ctx context.Context, store storage.Store) func() {
	return store.Subscribe(func(key string) {
		switch key {
		case storage.KeyToken, storage.KeyUser, storage.KeyCartItems:
			l.Render(ctx)
		}
	})
}

// Render writes the current status line.
func (l *StatusLine) Render(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if account, err := l.session.CurrentAccount(ctx); err == nil {
		fmt.Fprintf(l.out, "[%s · %s · cart: %s]\n", account.Name, account.Role, FormatQuantity(l.cart.Len()))

		return
	}

	fmt.Fprintf(l.out, "[signed out · cart: %s]\n", FormatQuantity(l.cart.Len()))
}
