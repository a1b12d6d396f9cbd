package notify

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChannel struct {
	name  string
	mu    sync.Mutex
	sent  []*domain.Order
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (c *recordingChannel) Name() string { return c.name }

func (c *recordingChannel) Send(ctx context.Context, order *domain.Order) error {
	c.calls.Add(1)
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if c.err != nil {
		return c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, order)
	return nil
}

func (c *recordingChannel) sentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func drain(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
}

func TestDispatchReachesAllChannels(t *testing.T) {
	a := &recordingChannel{name: "discord"}
	b := &recordingChannel{name: "telegram"}
	d := NewDispatcher([]Channel{a, b})

	d.Dispatch(testOrder())
	drain(t, d)

	assert.Equal(t, 1, a.sentCount())
	assert.Equal(t, 1, b.sentCount())
}

func TestDispatchDoesNotBlockCaller(t *testing.T) {
	slow := &recordingChannel{name: "discord", delay: 200 * time.Millisecond}
	d := NewDispatcher([]Channel{slow})

	start := time.Now()
	d.Dispatch(testOrder())
	assert.Less(t, time.Since(start), 50*time.Millisecond, "Dispatch must return immediately")

	drain(t, d)
	assert.Equal(t, 1, slow.sentCount())
}

func TestChannelFailureIsolated(t *testing.T) {
	failing := &recordingChannel{name: "discord", err: errors.New("webhook down")}
	healthy := &recordingChannel{name: "telegram"}
	d := NewDispatcher([]Channel{failing, healthy})

	d.Dispatch(testOrder())
	drain(t, d)

	assert.Equal(t, 0, failing.sentCount())
	assert.Equal(t, 1, healthy.sentCount(), "one channel failing must not stop the other")
}

func TestSlowChannelDoesNotDelayOther(t *testing.T) {
	slow := &recordingChannel{name: "discord", delay: 300 * time.Millisecond}
	fast := &recordingChannel{name: "telegram"}
	d := NewDispatcher([]Channel{slow, fast})

	d.Dispatch(testOrder())

	assert.Eventually(t, func() bool { return fast.sentCount() == 1 },
		100*time.Millisecond, 5*time.Millisecond,
		"fast channel must not be serialized behind the slow one")
	drain(t, d)
}

func TestSendTimeoutBoundsSlowChannel(t *testing.T) {
	stuck := &recordingChannel{name: "discord", delay: time.Minute}
	d := NewDispatcher([]Channel{stuck}, WithSendTimeout(20*time.Millisecond))

	d.Dispatch(testOrder())
	drain(t, d)

	assert.Equal(t, 0, stuck.sentCount())
}

func TestNoChannelsConfigured(t *testing.T) {
	d := NewDispatcher(nil)

	// Must be a no-op, not a panic.
	d.Dispatch(testOrder())
	drain(t, d)
}

func TestBreakerStopsHammeringDeadChannel(t *testing.T) {
	dead := &recordingChannel{name: "discord", err: errors.New("410 gone")}
	d := NewDispatcher([]Channel{dead})

	for i := 0; i < 10; i++ {
		d.Dispatch(testOrder())
		drain(t, d)
	}

	// Breaker opens after 3 consecutive failures; later dispatches
	// must not reach the channel again.
	assert.LessOrEqual(t, dead.calls.Load(), int32(3))
}

func TestCloseWaitsForInflightSends(t *testing.T) {
	slow := &recordingChannel{name: "discord", delay: 100 * time.Millisecond}
	d := NewDispatcher([]Channel{slow})

	d.Dispatch(testOrder())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	assert.Equal(t, 1, slow.sentCount(), "Close must drain in-flight deliveries")
}

func TestCloseHonorsContextDeadline(t *testing.T) {
	stuck := &recordingChannel{name: "discord", delay: time.Minute}
	d := NewDispatcher([]Channel{stuck}, WithSendTimeout(time.Minute))

	d.Dispatch(testOrder())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)
}
