package http

import (
	"context"
	"errors"

	"github.com/nisuz/decorhavenstore/internal/checkout"
	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/nisuz/decorhavenstore/internal/order"
	"github.com/nisuz/decorhavenstore/internal/payment"
)

type mockCartService struct {
	cart *domain.Cart
	err  error

	addedItems []domain.CartItem
	cleared    bool
}

func (m *mockCartService) Get(_ context.Context, userID string) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *mockCartService) Add(_ context.Context, userID string, item domain.CartItem) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.addedItems = append(m.addedItems, item)
	return m.cart, nil
}

func (m *mockCartService) Remove(_ context.Context, userID, productID string) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *mockCartService) SetQuantity(_ context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *mockCartService) Clear(_ context.Context, userID string) error {
	m.cleared = true
	return m.err
}

type mockCheckoutService struct {
	order *domain.Order
	err   error

	lastRequest checkout.PlaceOrderRequest
}

func (m *mockCheckoutService) PlaceOrder(_ context.Context, req checkout.PlaceOrderRequest) (*domain.Order, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

type mockOrderService struct {
	orders map[string]*domain.Order
	byUser []*domain.Order
	err    error
}

func (m *mockOrderService) Get(_ context.Context, id string) (*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (m *mockOrderService) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byUser, nil
}

type mockVerifier struct {
	verification *payment.Verification
	err          error
}

func (m *mockVerifier) Verify(_ context.Context, transactionID string) (*payment.Verification, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.verification, nil
}

// staticTokens maps fixed tokens to user ids.
type staticTokens map[string]string

func (s staticTokens) UserID(token string) (string, error) {
	userID, ok := s[token]
	if !ok {
		return "", errors.New("invalid token")
	}
	return userID, nil
}
