package checkout

import (
	"context"
	"fmt"
	"log"

	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/nisuz/decorhavenstore/internal/order"
	"github.com/nisuz/decorhavenstore/internal/payment"
)

type CartStore interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type PaymentProcessor interface {
	Process(ctx context.Context, method domain.PaymentMethod, amount float64, metadata map[string]string) (*payment.Result, error)
}

type OrderCreator interface {
	Create(ctx context.Context, params order.CreateParams) (*domain.Order, error)
}

type EventPublisher interface {
	OrderPlaced(ctx context.Context, order *domain.Order) error
}

type PlaceOrderRequest struct {
	UserID          string
	PaymentMethod   domain.PaymentMethod
	BillingAddress  domain.Address
	DeliveryAddress domain.Address
	ContactPhone    string
}

// Service runs the checkout flow: payment strictly precedes order
// creation, which strictly precedes notification dispatch, which
// strictly precedes cart clearing.
type Service struct {
	cart     CartStore
	payments PaymentProcessor
	orders   OrderCreator
	events   EventPublisher
}

func NewService(cart CartStore, payments PaymentProcessor, orders OrderCreator, events EventPublisher) *Service {
	return &Service{cart: cart, payments: payments, orders: orders, events: events}
}

func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	cart, err := s.cart.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Total is recomputed from the cart, never taken from the client.
	total := cart.Total()

	result, err := s.payments.Process(ctx, req.PaymentMethod, total, map[string]string{
		"user_id": req.UserID,
	})
	if err != nil {
		return nil, err
	}
	if !result.Success {
		// Cart stays intact so the user can retry.
		return nil, &PaymentDeclinedError{Method: req.PaymentMethod, Reason: result.Err}
	}

	placed, err := s.orders.Create(ctx, order.CreateParams{
		UserID:          req.UserID,
		Items:           cart.Items,
		PaymentMethod:   req.PaymentMethod,
		BillingAddress:  req.BillingAddress,
		DeliveryAddress: req.DeliveryAddress,
		ContactPhone:    req.ContactPhone,
		TransactionID:   result.TransactionID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.events.OrderPlaced(ctx, placed); err != nil {
		log.Printf("order-placed event for %s not published: %v", placed.ID, err)
	}

	if err := s.cart.Clear(ctx, req.UserID); err != nil {
		// The order is placed; a stale cart is recoverable.
		log.Printf("clear cart for user %s failed: %v", req.UserID, err)
	}

	return placed, nil
}

func validateRequest(req PlaceOrderRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidRequest)
	}
	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidRequest, req.PaymentMethod)
	}
	if err := validateAddress("billing", req.BillingAddress); err != nil {
		return err
	}
	return validateAddress("delivery", req.DeliveryAddress)
}

func validateAddress(kind string, addr domain.Address) error {
	if addr.Street == "" || addr.City == "" || addr.Country == "" {
		return fmt.Errorf("%w: incomplete %s address", ErrInvalidRequest, kind)
	}
	return nil
}
