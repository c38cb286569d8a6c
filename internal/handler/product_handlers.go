package handler

import (
	"errors"
	"net/http"

	"myapp/internal/apperr"
)

// GetProductsHandler - список товаров
func (h *Handler) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GetProductHandler - товар по id
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
