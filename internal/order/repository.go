package order

import (
	"context"
	"errors"

	"github.com/nisuz/decorhavenstore/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

type Repository interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	// UpdateStatus exists for operator tooling; nothing in the order
	// flow transitions status past "processing".
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Close() error
}
