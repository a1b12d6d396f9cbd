package payment

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Result is the uniform outcome of a payment attempt. Gateways report
// failure through it instead of raising to the caller, so the checkout
// flow stays the same regardless of how a gateway fails internally.
type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Err           string `json:"error,omitempty"`
}

// Gateway is a channel-specific payment-processing strategy. Returned
// errors are contained at the registry boundary and converted into a
// failed Result there.
type Gateway interface {
	Process(ctx context.Context, amount float64, metadata map[string]string) (*Result, error)
}

var txnSeq atomic.Int64

// newTransactionID builds a channel-prefixed, digits-only transaction
// id. The prefix is how the method is recovered from the id alone when
// verifying payment status out-of-band.
func newTransactionID(prefix string) string {
	return fmt.Sprintf("%s-%d%04d", prefix, time.Now().UnixMilli(), txnSeq.Add(1)%10000)
}
