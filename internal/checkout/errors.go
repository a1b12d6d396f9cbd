package checkout

import (
	"errors"
	"fmt"

	"github.com/nisuz/decorhavenstore/internal/domain"
)

var (
	ErrEmptyCart      = errors.New("cart is empty, nothing to checkout")
	ErrInvalidRequest = errors.New("invalid checkout request")
)

// PaymentDeclinedError is the one user-visible structured failure:
// checkout halts, the cart is preserved, and the user may retry.
type PaymentDeclinedError struct {
	Method domain.PaymentMethod
	Reason string
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment via %s declined: %s", e.Method, e.Reason)
}
