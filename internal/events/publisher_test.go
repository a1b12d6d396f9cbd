package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	messages []kafka.Message
	err      error
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *captureWriter) Close() error { return nil }

func TestOrderPlacedEvent(t *testing.T) {
	w := &captureWriter{}
	p := &KafkaPublisher{writer: w}

	order := &domain.Order{
		ID:            "ord-42",
		UserID:        "u1",
		Items:         []domain.OrderItem{{ProductID: "1", Name: "Ceramic Plant Pot", Price: 19.95, Quantity: 1}},
		TotalAmount:   19.95,
		PaymentMethod: domain.PaymentMethodCOD,
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.OrderPlaced(context.Background(), order))

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, []byte("ord-42"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("order_placed"), msg.Headers[0].Value)

	var event orderPlacedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "ord-42", event.OrderID)
	assert.Equal(t, "cod", event.PaymentMethod)
	assert.Equal(t, 19.95, event.TotalAmount)
}

func TestOrderPlacedWriteFailure(t *testing.T) {
	w := &captureWriter{err: errors.New("broker unreachable")}
	p := &KafkaPublisher{writer: w}

	err := p.OrderPlaced(context.Background(), &domain.Order{ID: "ord-1"})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	p := NoopPublisher{}
	assert.NoError(t, p.OrderPlaced(context.Background(), &domain.Order{}))
	assert.NoError(t, p.Close())
}
