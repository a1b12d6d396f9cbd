package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nisuz/decorhavenstore/internal/payment"
)

type PaymentVerifier interface {
	Verify(ctx context.Context, transactionID string) (*payment.Verification, error)
}

type PaymentsHandler struct {
	verifier PaymentVerifier
}

func NewPaymentsHandler(v PaymentVerifier) *PaymentsHandler {
	return &PaymentsHandler{verifier: v}
}

type VerifyPaymentRequestDTO struct {
	TransactionID string `json:"transaction_id"`
}

func (h *PaymentsHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.TransactionID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "transaction_id is required")
		return
	}

	verification, err := h.verifier.Verify(r.Context(), req.TransactionID)
	if err != nil {
		if errors.Is(err, payment.ErrMalformedTransactionID) {
			respondError(w, http.StatusBadRequest, "invalid_transaction_id", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to verify payment")
		return
	}
	respondJSON(w, http.StatusOK, verification)
}
