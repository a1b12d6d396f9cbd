package checkout

import (
	"context"
	"sync"

	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/nisuz/decorhavenstore/internal/order"
	"github.com/nisuz/decorhavenstore/internal/payment"
)

type mockCart struct {
	mu      sync.Mutex
	cart    *domain.Cart
	getErr  error
	cleared bool
}

func (m *mockCart) Get(_ context.Context, userID string) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.cart == nil {
		return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
	}
	return m.cart, nil
}

func (m *mockCart) Clear(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared = true
	return nil
}

func (m *mockCart) wasCleared() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleared
}

type mockPayments struct {
	result     *payment.Result
	err        error
	gotMethod  domain.PaymentMethod
	gotAmount  float64
	callsCount int
}

func (m *mockPayments) Process(_ context.Context, method domain.PaymentMethod, amount float64, _ map[string]string) (*payment.Result, error) {
	m.callsCount++
	m.gotMethod = method
	m.gotAmount = amount
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockOrders struct {
	created *domain.Order
	err     error
	got     order.CreateParams
}

func (m *mockOrders) Create(_ context.Context, params order.CreateParams) (*domain.Order, error) {
	m.got = params
	if m.err != nil {
		return nil, m.err
	}
	items := make([]domain.OrderItem, len(params.Items))
	var total float64
	for i, item := range params.Items {
		items[i] = domain.OrderItem{ProductID: item.ProductID, Name: item.Name, Price: item.Price, Quantity: item.Quantity}
		total += item.Price * float64(item.Quantity)
	}
	m.created = &domain.Order{
		ID:            "ord-1",
		UserID:        params.UserID,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: params.PaymentMethod,
		Status:        domain.OrderStatusProcessing,
		TransactionID: params.TransactionID,
	}
	return m.created, nil
}

type mockEvents struct {
	published []*domain.Order
	err       error
}

func (m *mockEvents) OrderPlaced(_ context.Context, order *domain.Order) error {
	m.published = append(m.published, order)
	return m.err
}
