package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nisuz/decorhavenstore/internal/catalog"
)

type CatalogHandler struct {
	catalog catalog.Catalog
}

func NewCatalogHandler(c catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		products, err := h.catalog.ListByCategory(ctx, categoryID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to list products")
			return
		}
		respondJSON(w, http.StatusOK, products)
		return
	}

	if r.URL.Query().Get("featured") == "true" {
		products, err := h.catalog.ListFeatured(ctx)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to list products")
			return
		}
		respondJSON(w, http.StatusOK, products)
		return
	}

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}
