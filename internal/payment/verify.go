package payment

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/nisuz/decorhavenstore/internal/domain"
)

var (
	ErrMalformedTransactionID = errors.New("malformed transaction id")

	txnIDPattern = regexp.MustCompile(`^([A-Z]+)-\d+$`)
)

// MethodFromTransactionID recovers the payment method from the
// channel prefix of a transaction id.
func MethodFromTransactionID(transactionID string) (domain.PaymentMethod, error) {
	match := txnIDPattern.FindStringSubmatch(transactionID)
	if match == nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedTransactionID, transactionID)
	}

	method := domain.PaymentMethod(strings.ToLower(match[1]))
	if !method.IsValid() {
		return "", fmt.Errorf("%w: unknown prefix %q", ErrMalformedTransactionID, match[1])
	}
	return method, nil
}

// Verification is the out-of-band payment status for a transaction.
type Verification struct {
	Verified bool                 `json:"verified"`
	Method   domain.PaymentMethod `json:"method"`
}

// Verifier re-checks a past charge against the processor. COD
// transactions are settled on delivery and always verify.
type Verifier struct {
	processor Processor
}

func NewVerifier(processor Processor) *Verifier {
	return &Verifier{processor: processor}
}

func (v *Verifier) Verify(ctx context.Context, transactionID string) (*Verification, error) {
	method, err := MethodFromTransactionID(transactionID)
	if err != nil {
		return nil, err
	}

	if method == domain.PaymentMethodCOD {
		return &Verification{Verified: true, Method: method}, nil
	}

	ok, err := v.processor.Authorize(ctx, method, 0)
	if err != nil {
		return nil, fmt.Errorf("verify %s: %w", transactionID, err)
	}
	return &Verification{Verified: ok, Method: method}, nil
}
