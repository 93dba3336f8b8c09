package entity

import "time"

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderDetail is one line of a placed order as reported by the backend.
type OrderDetail struct {
	OrchidID   string  `json:"orchidId"`
	OrchidName string  `json:"orchidName"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
}

// Order is a server-owned entity; the client only ever reads it back.
type Order struct {
	ID              string        `json:"id"`
	TotalAmount     float64       `json:"totalAmount"`
	OrderDate       time.Time     `json:"orderDate"`
	Status          OrderStatus   `json:"orderStatus"`
	AccountID       string        `json:"accountId"`
	ShippingAddress string        `json:"shippingAddress"`
	Note            string        `json:"note"`
	Details         []OrderDetail `json:"orderDetails"`
}

// OrderQuote is the client-side pricing of the current cart: subtotal plus
// the shipping fee, which drops to zero above the free-shipping threshold.
type OrderQuote struct {
	Subtotal    float64
	ShippingFee float64
	Total       float64
}

// OrderConfirmation is returned after a successful checkout.
type OrderConfirmation struct {
	OrderID string
	Quote   OrderQuote
}
