package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add_MergesSameProduct(t *testing.T) {
	cart := NewCart(nil)

	merged := cart.Add(CartLine{ProductID: "orc-1", Name: "Phalaenopsis", UnitPrice: 120000, Quantity: 2})
	assert.False(t, merged)

	merged = cart.Add(CartLine{ProductID: "orc-1", Name: "Phalaenopsis", UnitPrice: 120000, Quantity: 3})
	assert.True(t, merged)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart(nil)
	cart.Add(CartLine{ProductID: "orc-2", Quantity: 1})
	cart.Add(CartLine{ProductID: "orc-1", Quantity: 1})
	cart.Add(CartLine{ProductID: "orc-3", Quantity: 1})

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "orc-2", lines[0].ProductID)
	assert.Equal(t, "orc-1", lines[1].ProductID)
	assert.Equal(t, "orc-3", lines[2].ProductID)
}

func TestNewCart_MergesDuplicatePersistedLines(t *testing.T) {
	cart := NewCart([]CartLine{
		{ProductID: "orc-1", Quantity: 2},
		{ProductID: "orc-2", Quantity: 1},
		{ProductID: "orc-1", Quantity: 4},
	})

	require.Equal(t, 2, cart.Len())
	assert.Equal(t, 6, cart.Lines()[0].Quantity)
}

func TestCart_Adjust(t *testing.T) {
	tests := []struct {
		name        string
		delta       int
		wantFound   bool
		wantRemoved bool
		wantQty     int
	}{
		{name: "increment", delta: 2, wantFound: true, wantRemoved: false, wantQty: 5},
		{name: "decrement", delta: -1, wantFound: true, wantRemoved: false, wantQty: 2},
		{name: "decrement to zero removes", delta: -3, wantFound: true, wantRemoved: true},
		{name: "decrement below zero removes", delta: -10, wantFound: true, wantRemoved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart([]CartLine{{ProductID: "orc-1", Quantity: 3}})

			found, removed := cart.Adjust("orc-1", tt.delta)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantRemoved, removed)

			if tt.wantRemoved {
				assert.True(t, cart.IsEmpty())
			} else {
				assert.Equal(t, tt.wantQty, cart.Lines()[0].Quantity)
			}
		})
	}
}

func TestCart_Adjust_UnknownIDIsNoOp(t *testing.T) {
	cart := NewCart([]CartLine{{ProductID: "orc-1", Quantity: 3}})

	found, removed := cart.Adjust("missing", -5)
	assert.False(t, found)
	assert.False(t, removed)
	assert.Equal(t, 1, cart.Len())
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart([]CartLine{
		{ProductID: "orc-1", Quantity: 1},
		{ProductID: "orc-2", Quantity: 2},
	})

	assert.True(t, cart.Remove("orc-1"))
	assert.False(t, cart.Remove("orc-1"))
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, "orc-2", cart.Lines()[0].ProductID)
}

func TestCart_Subtotal(t *testing.T) {
	cart := NewCart([]CartLine{
		{ProductID: "orc-1", UnitPrice: 100000, Quantity: 3},
		{ProductID: "orc-2", UnitPrice: 50000, Quantity: 1},
	})

	// Calling twice must not mutate anything.
	assert.InDelta(t, 350000, cart.Subtotal(), 0.001)
	assert.InDelta(t, 350000, cart.Subtotal(), 0.001)
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := NewCart([]CartLine{{ProductID: "orc-1", Quantity: 1}})

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestNewCartLine_CapturesSnapshot(t *testing.T) {
	o := Orchid{
		ID:       "orc-1",
		Name:     "Phalaenopsis",
		Price:    120000,
		ImageURL: "https://img.example.com/orc-1.jpg",
	}

	line := NewCartLine(o, 2)
	assert.Equal(t, CartLine{
		ProductID: "orc-1",
		Name:      "Phalaenopsis",
		UnitPrice: 120000,
		ImageURL:  "https://img.example.com/orc-1.jpg",
		Quantity:  2,
	}, line)
}
