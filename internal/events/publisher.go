package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/segmentio/kafka-go"
)

const orderPlacedTopic = "order-placed"

// Publisher emits order lifecycle events for downstream consumers
// (fulfilment, analytics). Publishing is best-effort; a failed publish
// never affects the order.
type Publisher interface {
	OrderPlaced(ctx context.Context, order *domain.Order) error
	Close() error
}

// kafkaWriter is the slice of kafka.Writer the publisher uses, split
// out so tests can capture messages.
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer kafkaWriter
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  orderPlacedTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

type orderPlacedEvent struct {
	OrderID       string             `json:"order_id"`
	UserID        string             `json:"user_id"`
	Items         []domain.OrderItem `json:"items"`
	TotalAmount   float64            `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	PlacedAt      time.Time          `json:"placed_at"`
}

func (p *KafkaPublisher) OrderPlaced(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(orderPlacedEvent{
		OrderID:       order.ID,
		UserID:        order.UserID,
		Items:         order.Items,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod.String(),
		PlacedAt:      order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order-placed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID), // order_id for partition ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_placed")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order-placed event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) OrderPlaced(context.Context, *domain.Order) error { return nil }
func (NoopPublisher) Close() error                                     { return nil }
