package order

import (
	"context"
	"sync"
	"testing"

	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	err    error
}

func newMockRepository() *mockRepository {
	return &mockRepository{orders: make(map[string]*domain.Order)}
}

func (m *mockRepository) Create(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockRepository) Get(_ context.Context, id string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (m *mockRepository) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*domain.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (m *mockRepository) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (m *mockRepository) Close() error { return nil }

type mockNotifier struct {
	mu     sync.Mutex
	orders []*domain.Order
}

func (m *mockNotifier) Dispatch(order *domain.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, order)
}

func sampleParams() CreateParams {
	return CreateParams{
		UserID: "u1",
		Items: []domain.CartItem{
			{ProductID: "1", Name: "Beige Linen Throw Pillow", Price: 24.99, Quantity: 2},
			{ProductID: "2", Name: "Ceramic Plant Pot", Price: 19.95, Quantity: 1},
		},
		PaymentMethod: domain.PaymentMethodCard,
		BillingAddress: domain.Address{
			Street: "123 Main St", City: "Kathmandu", State: "Bagmati",
			PostalCode: "44600", Country: "Nepal",
		},
		DeliveryAddress: domain.Address{
			Street: "456 Side St", City: "Lalitpur", State: "Bagmati",
			PostalCode: "44700", Country: "Nepal",
		},
		ContactPhone:  "123-456-7890",
		TransactionID: "CARD-17123456780001",
	}
}

func TestCreateOrder(t *testing.T) {
	repo := newMockRepository()
	notifier := &mockNotifier{}
	s := NewService(repo, notifier)

	order, err := s.Create(context.Background(), sampleParams())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.InDelta(t, 69.93, order.TotalAmount, 0.0001)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, "CARD-17123456780001", order.TransactionID)

	stored, err := repo.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)

	require.Len(t, notifier.orders, 1)
	assert.Equal(t, order.ID, notifier.orders[0].ID)
}

func TestCreateOrderSnapshotIsolation(t *testing.T) {
	repo := newMockRepository()
	s := NewService(repo, nil)

	params := sampleParams()
	order, err := s.Create(context.Background(), params)
	require.NoError(t, err)

	// Mutating the source cart items must not touch the stored order.
	params.Items[0].Quantity = 99
	params.Items[0].Price = 0.01

	stored, err := repo.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 24.99, stored.Items[0].Price)
}

func TestCreateOrderZeroTotalCOD(t *testing.T) {
	repo := newMockRepository()
	s := NewService(repo, nil)

	order, err := s.Create(context.Background(), CreateParams{
		UserID:        "u1",
		Items:         []domain.CartItem{},
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)
	assert.Zero(t, order.TotalAmount)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
}

func TestCreateOrderNilNotifier(t *testing.T) {
	repo := newMockRepository()
	s := NewService(repo, nil)

	_, err := s.Create(context.Background(), sampleParams())
	assert.NoError(t, err)
}

func TestCreateOrderRepositoryError(t *testing.T) {
	repo := newMockRepository()
	repo.err = assert.AnError
	notifier := &mockNotifier{}
	s := NewService(repo, notifier)

	_, err := s.Create(context.Background(), sampleParams())
	require.Error(t, err)
	assert.Empty(t, notifier.orders, "failed creation must not notify")
}
