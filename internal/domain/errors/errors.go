// Package errors defines the domain-level error values shared across
// usecases. Guard errors double as navigation signals: the CLI maps
// ErrLoginRequired to the login flow and ErrPermissionDenied to the home
// view, mirroring how the route guards redirect.
package errors

import (
	"fmt"
	"strings"

	"orchid/internal/errors"
)

var (
	// ErrInvalidQuantity rejects cart additions with a quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrEmptyCart rejects a checkout attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrLoginRequired signals that the caller must authenticate first.
	ErrLoginRequired = errors.New("login required")

	// ErrPermissionDenied signals that the caller is authenticated but lacks
	// the required role.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound signals that a referenced record does not exist.
	ErrNotFound = errors.New("not found")
)

// DiscrepancyKind classifies how a cart line diverged from the live catalog.
type DiscrepancyKind string

const (
	PriceChanged DiscrepancyKind = "PRICE_CHANGED"
	Unavailable  DiscrepancyKind = "UNAVAILABLE"
	NotFound     DiscrepancyKind = "NOT_FOUND"
)

// Discrepancy records one cart line that no longer matches the backend.
type Discrepancy struct {
	ProductID    string
	Name         string
	Kind         DiscrepancyKind
	CartPrice    float64
	CurrentPrice float64
}

func (d Discrepancy) String() string {
	switch d.Kind {
	case PriceChanged:
		return fmt.Sprintf("%s: price changed from %.0f to %.0f", d.Name, d.CartPrice, d.CurrentPrice)
	case Unavailable:
		return fmt.Sprintf("%s: no longer available", d.Name)
	default:
		return fmt.Sprintf("%s: no longer in the catalog", d.Name)
	}
}

// CartConflictError aborts a checkout whose cart snapshot drifted from the
// live catalog. The caller surfaces every discrepancy instead of silently
// trusting the snapshot.
type CartConflictError struct {
	Discrepancies []Discrepancy
}

func (e *CartConflictError) Error() string {
	parts := make([]string, len(e.Discrepancies))
	for i, d := range e.Discrepancies {
		parts[i] = d.String()
	}

	return "cart out of date with catalog: " + strings.Join(parts, "; ")
}
