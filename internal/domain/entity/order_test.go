package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderPending, OrderProcessing, OrderShipped, OrderCompleted, OrderCancelled,
	} {
		assert.True(t, status.IsValid(), status.String())
	}

	assert.False(t, OrderStatus("DELIVERED").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
