package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"myapp/internal/apperr"
	"myapp/internal/auth"
)

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler - регистрация нового пользователя.
// Проверка занятости email и вставка не атомарны (как в исходной схеме).
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	exists, err := h.users.ExistsByEmail(r.Context(), input.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if exists {
		respondMessage(w, http.StatusBadRequest, "Email already exists")
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if _, err := h.users.CreateWithPassword(r.Context(), input.Name, input.Email, hash); err != nil {
		h.handleError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "Registration successful.")
}

// LoginHandler - вход по email и паролю, выдает JWT токен.
// Несуществующий email и неверный пароль наружу неразличимы.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), input.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.handleError(w, err)
		return
	}

	if !auth.CheckPassword(input.Password, user.Password) {
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Name, []byte(h.cfg.JWTSecret), h.cfg.JWTExpiration)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ProtectedHandler - пример защищённого маршрута.
// Claims кладет в контекст requireAuth.
func (h *Handler) ProtectedHandler(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized: No user data found in token.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"msg": "Protected access granted!",
		"user": map[string]interface{}{
			"id":   claims.UserID,
			"name": claims.Name,
		},
	})
}
