package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nisuz/decorhavenstore/internal/catalog"
	"github.com/nisuz/decorhavenstore/internal/domain"
)

// CartService is the slice of the cart store the handlers need.
type CartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Add(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error)
	Remove(ctx context.Context, userID, productID string) (*domain.Cart, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type CartHandler struct {
	cart    CartService
	catalog catalog.Catalog
}

func NewCartHandler(cart CartService, c catalog.Catalog) *CartHandler {
	return &CartHandler{cart: cart, catalog: c}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func cartResponse(cart *domain.Cart) CartResponseDTO {
	return CartResponseDTO{Items: cart.Items, Total: cart.Total()}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())

	cart, err := h.cart.Get(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(cart))
}

// AddItem resolves the product in the catalog and snapshots its name,
// price and image into the cart line. The client only names the
// product; prices never come from the request.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	item := domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
	}
	if len(product.Images) > 0 {
		item.Image = product.Images[0]
	}

	cart, err := h.cart.Add(r.Context(), userID, item)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}
	respondJSON(w, http.StatusCreated, cartResponse(cart))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Zero or negative quantity removes the item.
	cart, err := h.cart.SetQuantity(r.Context(), userID, productID, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	productID := chi.URLParam(r, "product_id")

	cart, err := h.cart.Remove(r.Context(), userID, productID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())

	if err := h.cart.Clear(r.Context(), userID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
