package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"myapp/internal/apperr"
	"myapp/internal/models"

	"github.com/gorilla/mux"
)

// parseIDParam извлекает числовой id из пути. Нечисловой id - это 400,
// молча не приводим.
func parseIDParam(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetUsersHandler - список пользователей (без паролей)
func (h *Handler) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetAll(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetUserHandler - пользователь по id
func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// CreateUserHandler - создание пользователя без пароля
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var input models.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" || input.Email == "" {
		respondError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	user, err := h.users.Create(r.Context(), input.Name, input.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// UpdateUserHandler - частичное обновление (name и/или email)
func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var input models.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// Пустая строка считается отсутствием значения, как в проверке !name
	if (input.Name == nil || *input.Name == "") && (input.Email == nil || *input.Email == "") {
		respondError(w, http.StatusBadRequest, "No update data provided")
		return
	}

	user, err := h.users.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found or nothing to update")
			return
		}
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// RemoveUserHandler - удаление пользователя
func (h *Handler) RemoveUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	count, err := h.users.Remove(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if count == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
