package handler

import (
	"encoding/json"
	"net/http"

	"myapp/internal/models"
)

// GetOrdersHandler - список заказов
func (h *Handler) GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.GetAll(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// CreateOrderHandler - создание заказа
func (h *Handler) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var input models.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Customer == "" || input.Total == 0 {
		respondError(w, http.StatusBadRequest, "customer and total are required")
		return
	}

	order, err := h.orders.Create(r.Context(), input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}
