package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nisuz/decorhavenstore/internal/checkout"
	"github.com/nisuz/decorhavenstore/internal/domain"
	"github.com/nisuz/decorhavenstore/internal/payment"
)

type CheckoutService interface {
	PlaceOrder(ctx context.Context, req checkout.PlaceOrderRequest) (*domain.Order, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
}

func NewCheckoutHandler(c CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: c}
}

type AddressDTO struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (a AddressDTO) toDomain() domain.Address {
	return domain.Address{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

type PlaceOrderRequestDTO struct {
	PaymentMethod   string     `json:"payment_method"`
	BillingAddress  AddressDTO `json:"billing_address"`
	DeliveryAddress AddressDTO `json:"delivery_address"`
	ContactPhone    string     `json:"contact_phone"`
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())

	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), checkout.PlaceOrderRequest{
		UserID:          userID,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		BillingAddress:  req.BillingAddress.toDomain(),
		DeliveryAddress: req.DeliveryAddress.toDomain(),
		ContactPhone:    req.ContactPhone,
	})
	if err != nil {
		handleCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func handleCheckoutError(w http.ResponseWriter, err error) {
	var declined *checkout.PaymentDeclinedError
	switch {
	case errors.As(err, &declined):
		respondError(w, http.StatusPaymentRequired, "payment_declined", declined.Reason)
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", "cart is empty")
	case errors.Is(err, checkout.ErrInvalidRequest):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, payment.ErrUnsupportedMethod):
		respondError(w, http.StatusBadRequest, "unsupported_method", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "checkout failed")
	}
}
