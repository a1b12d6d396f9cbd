package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCOD        PaymentMethod = "cod"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodESewa      PaymentMethod = "esewa"
	PaymentMethodKhalti     PaymentMethod = "khalti"
	PaymentMethodBanking    PaymentMethod = "banking"
	PaymentMethodConnectIPS PaymentMethod = "connectips"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodCard, PaymentMethodESewa,
		PaymentMethodKhalti, PaymentMethodBanking, PaymentMethodConnectIPS:
		return true
	}
	return false
}

// String representation (for logging)
func (m PaymentMethod) String() string {
	return string(m)
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderItem is a denormalized snapshot of a product at purchase time.
// Name and price are copied so later catalog changes never alter a
// placed order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is immutable once created. Items holds a copy of the cart
// contents at checkout time, not live references.
type Order struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     float64       `json:"total_amount"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Status          OrderStatus   `json:"status"`
	BillingAddress  Address       `json:"billing_address"`
	DeliveryAddress Address       `json:"delivery_address"`
	ContactPhone    string        `json:"contact_phone,omitempty"`
	TransactionID   string        `json:"transaction_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
