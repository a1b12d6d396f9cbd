package notify

import (
	"context"

	"github.com/nisuz/decorhavenstore/internal/domain"
)

// Channel is an independent external notification destination. A
// failed Send is isolated to that channel; it never affects order
// completion or any other channel.
type Channel interface {
	Name() string
	Send(ctx context.Context, order *domain.Order) error
}
