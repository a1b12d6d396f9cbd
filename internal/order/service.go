package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nisuz/decorhavenstore/internal/domain"
)

// Notifier receives a completed order for fan-out. Dispatch must not
// block; its outcome never affects order creation.
type Notifier interface {
	Dispatch(order *domain.Order)
}

type CreateParams struct {
	UserID          string
	Items           []domain.CartItem
	PaymentMethod   domain.PaymentMethod
	BillingAddress  domain.Address
	DeliveryAddress domain.Address
	ContactPhone    string
	TransactionID   string
}

// Service assembles and persists orders.
type Service struct {
	repo     Repository
	notifier Notifier
}

// NewService builds the order assembly service. notifier may be nil
// when notifications are disabled.
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create snapshots the cart items into a new order with status
// "processing". The total is recomputed from the items, never taken
// from the caller. Notification dispatch is a fire-and-forget side
// effect; a created order is a success regardless of it.
func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Order, error) {
	items := make([]domain.OrderItem, len(params.Items))
	var total float64
	for i, item := range params.Items {
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
		total += item.Price * float64(item.Quantity)
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		UserID:          params.UserID,
		Items:           items,
		TotalAmount:     total,
		PaymentMethod:   params.PaymentMethod,
		Status:          domain.OrderStatusProcessing,
		BillingAddress:  params.BillingAddress,
		DeliveryAddress: params.DeliveryAddress,
		ContactPhone:    params.ContactPhone,
		TransactionID:   params.TransactionID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Dispatch(order)
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
