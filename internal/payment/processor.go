package payment

import (
	"context"
	"math/rand"
	"time"

	"github.com/nisuz/decorhavenstore/internal/domain"
)

// Processor stands in for a real external payment processor.
type Processor interface {
	Authorize(ctx context.Context, method domain.PaymentMethod, amount float64) (bool, error)
}

const (
	defaultLatency     = 800 * time.Millisecond
	defaultSuccessRate = 0.95
)

// SimulatedProcessor approves a fixed fraction of charges after a
// fixed delay. The random source is injectable so tests are
// deterministic.
type SimulatedProcessor struct {
	latency     time.Duration
	successRate float64
	randFloat   func() float64
}

type SimulatedOption func(*SimulatedProcessor)

func WithLatency(d time.Duration) SimulatedOption {
	return func(p *SimulatedProcessor) { p.latency = d }
}

func WithSuccessRate(rate float64) SimulatedOption {
	return func(p *SimulatedProcessor) { p.successRate = rate }
}

func WithRandFloat(f func() float64) SimulatedOption {
	return func(p *SimulatedProcessor) { p.randFloat = f }
}

func NewSimulatedProcessor(opts ...SimulatedOption) *SimulatedProcessor {
	p := &SimulatedProcessor{
		latency:     defaultLatency,
		successRate: defaultSuccessRate,
		randFloat:   rand.Float64,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *SimulatedProcessor) Authorize(ctx context.Context, _ domain.PaymentMethod, _ float64) (bool, error) {
	if p.latency > 0 {
		select {
		case <-time.After(p.latency):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	return p.randFloat() < p.successRate, nil
}
