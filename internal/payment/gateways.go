package payment

import (
	"context"
	"fmt"
	"log"

	"github.com/nisuz/decorhavenstore/internal/domain"
)

// codGateway handles cash-on-delivery. No external processor is
// involved, so it never fails; the synthetic transaction id marks the
// order for manual settlement.
type codGateway struct{}

func (codGateway) Process(_ context.Context, amount float64, _ map[string]string) (*Result, error) {
	log.Printf("processing COD payment of %.2f", amount)
	return &Result{
		Success:       true,
		TransactionID: newTransactionID("COD"),
	}, nil
}

// processorGateway routes a charge through the external processor and
// issues a transaction id carrying the channel's prefix.
type processorGateway struct {
	method    domain.PaymentMethod
	prefix    string
	processor Processor
}

func (g *processorGateway) Process(ctx context.Context, amount float64, _ map[string]string) (*Result, error) {
	log.Printf("processing %s payment of %.2f", g.method, amount)

	ok, err := g.processor.Authorize(ctx, g.method, amount)
	if err != nil {
		return nil, fmt.Errorf("%s authorization: %w", g.method, err)
	}
	if !ok {
		return &Result{Success: false, Err: "Payment failed"}, nil
	}

	return &Result{
		Success:       true,
		TransactionID: newTransactionID(g.prefix),
	}, nil
}
