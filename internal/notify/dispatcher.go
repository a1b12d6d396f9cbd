package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/sony/gobreaker/v2"
)

const defaultSendTimeout = 5 * time.Second

// Dispatcher fans a completed order out to every enabled channel.
// Dispatch returns immediately; each delivery runs in its own
// goroutine so no channel waits on another, and every in-flight send
// is tracked so Close can drain them during shutdown. A dead channel
// trips its circuit breaker instead of being hammered on every order.
type Dispatcher struct {
	channels []Channel
	breakers map[string]*gobreaker.CircuitBreaker[struct{}]
	timeout  time.Duration
	wg       sync.WaitGroup
}

type DispatcherOption func(*Dispatcher)

func WithSendTimeout(d time.Duration) DispatcherOption {
	return func(dp *Dispatcher) { dp.timeout = d }
}

func NewDispatcher(channels []Channel, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		channels: channels,
		breakers: make(map[string]*gobreaker.CircuitBreaker[struct{}]),
		timeout:  defaultSendTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, ch := range channels {
		d.breakers[ch.Name()] = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:    ch.Name(),
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Printf("notification channel %s breaker %s -> %s", name, from, to)
			},
		})
	}
	return d
}

// Dispatch sends the order to every channel without blocking the
// caller. Failures are logged and isolated; the order is already
// placed and stays placed.
func (d *Dispatcher) Dispatch(order *domain.Order) {
	for _, ch := range d.channels {
		d.wg.Add(1)
		go func(ch Channel) {
			defer d.wg.Done()
			d.send(ch, order)
		}(ch)
	}
}

func (d *Dispatcher) send(ch Channel, order *domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	_, err := d.breakers[ch.Name()].Execute(func() (struct{}, error) {
		return struct{}{}, ch.Send(ctx, order)
	})
	if err != nil {
		log.Printf("%s notification for order %s failed: %v", ch.Name(), order.ID, err)
		return
	}
	log.Printf("%s notification for order %s delivered", ch.Name(), order.ID)
}

// Close waits for in-flight deliveries, bounded by ctx. It never
// blocks order placement; it is for graceful shutdown only.
func (d *Dispatcher) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
