package cli

import (
	"bytes"
	"testing"

	"orchid/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRenderCart_EmptyState(t *testing.T) {
	var buf bytes.Buffer

	renderCart(&buf, nil, entity.OrderQuote{}, "VND")

	assert.Equal(t, "Your cart is empty.\n", buf.String())
}

func TestRenderCart_ListingWithTotals(t *testing.T) {
	var buf bytes.Buffer

	lines := []entity.CartLine{
		{ProductID: "orc-1", Name: "Phalaenopsis", UnitPrice: 100000, Quantity: 3},
		{ProductID: "orc-2", Name: "Dendrobium", UnitPrice: 50000, Quantity: 1},
	}
	quote := entity.OrderQuote{Subtotal: 350000, ShippingFee: 30000, Total: 380000}

	renderCart(&buf, lines, quote, "VND")

	out := buf.String()
	assert.Contains(t, out, "Phalaenopsis")
	assert.Contains(t, out, "300,000 ₫")
	assert.Contains(t, out, "Subtotal: 350,000 ₫")
	assert.Contains(t, out, "Shipping: 30,000 ₫")
	assert.Contains(t, out, "Total: 380,000 ₫")
}

func TestRenderCart_FreeShipping(t *testing.T) {
	var buf bytes.Buffer

	lines := []entity.CartLine{
		{ProductID: "orc-1", Name: "Cattleya", UnitPrice: 600000, Quantity: 1},
	}
	quote := entity.OrderQuote{Subtotal: 600000, ShippingFee: 0, Total: 600000}

	renderCart(&buf, lines, quote, "VND")

	assert.Contains(t, buf.String(), "Shipping: free")
}

func TestRenderOrchids_EmptyState(t *testing.T) {
	var buf bytes.Buffer

	renderOrchids(&buf, nil, "VND")

	assert.Equal(t, "No orchids in the catalog.\n", buf.String())
}

func TestRenderOrchids_Table(t *testing.T) {
	var buf bytes.Buffer

	orchids := []entity.Orchid{
		{
			ID:        "orc-1",
			Name:      "Phalaenopsis",
			Price:     120000,
			Natural:   true,
			Available: true,
			Category:  &entity.Category{ID: "cat-1", Name: "Vanda"},
		},
	}

	renderOrchids(&buf, orchids, "VND")

	out := buf.String()
	assert.Contains(t, out, "Phalaenopsis")
	assert.Contains(t, out, "120,000 ₫")
	assert.Contains(t, out, "natural")
	assert.Contains(t, out, "Vanda")
}

func TestRenderOrders_EmptyState(t *testing.T) {
	var buf bytes.Buffer

	renderOrders(&buf, nil, "VND")

	assert.Equal(t, "No orders yet.\n", buf.String())
}
