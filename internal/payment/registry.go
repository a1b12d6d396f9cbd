package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/nisuz/decorhavenstore/internal/domain"
)

var ErrUnsupportedMethod = errors.New("payment method not supported")

// Registry maps payment methods to gateway implementations. Adding a
// payment rail means registering a new gateway, not editing a switch.
type Registry struct {
	mu       sync.RWMutex
	gateways map[domain.PaymentMethod]Gateway
}

func NewRegistry() *Registry {
	return &Registry{gateways: make(map[domain.PaymentMethod]Gateway)}
}

// NewDefaultRegistry wires every supported method against the given
// processor. COD bypasses the processor entirely.
func NewDefaultRegistry(processor Processor) *Registry {
	r := NewRegistry()
	r.Register(domain.PaymentMethodCOD, codGateway{})
	r.Register(domain.PaymentMethodCard, &processorGateway{domain.PaymentMethodCard, "CARD", processor})
	r.Register(domain.PaymentMethodESewa, &processorGateway{domain.PaymentMethodESewa, "ESEWA", processor})
	r.Register(domain.PaymentMethodKhalti, &processorGateway{domain.PaymentMethodKhalti, "KHALTI", processor})
	r.Register(domain.PaymentMethodBanking, &processorGateway{domain.PaymentMethodBanking, "BANKING", processor})
	r.Register(domain.PaymentMethodConnectIPS, &processorGateway{domain.PaymentMethodConnectIPS, "CONNECTIPS", processor})
	return r
}

func (r *Registry) Register(method domain.PaymentMethod, gateway Gateway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gateways[method] = gateway
}

func (r *Registry) Resolve(method domain.PaymentMethod) (Gateway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gateway, ok := r.gateways[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
	return gateway, nil
}

// Process resolves the gateway and runs the charge. Only an
// unrecognized method is an error; gateway-internal errors and panics
// are contained here and reported as a failed Result.
func (r *Registry) Process(ctx context.Context, method domain.PaymentMethod, amount float64, metadata map[string]string) (*Result, error) {
	gateway, err := r.Resolve(method)
	if err != nil {
		return nil, err
	}
	return safeProcess(ctx, method, gateway, amount, metadata), nil
}

func safeProcess(ctx context.Context, method domain.PaymentMethod, gateway Gateway, amount float64, metadata map[string]string) (result *Result) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("%s gateway panic: %v", method, rec)
			result = &Result{Success: false, Err: "Unknown payment error"}
		}
	}()

	result, err := gateway.Process(ctx, amount, metadata)
	if err != nil {
		log.Printf("%s gateway error: %v", method, err)
		return &Result{Success: false, Err: err.Error()}
	}
	return result
}
