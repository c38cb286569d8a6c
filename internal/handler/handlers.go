package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"myapp/config"
	"myapp/internal/apperr"
	"myapp/internal/models"
)

// Интерфейсы зависимостей обработчиков. Реализации живут в
// internal/repository и internal/service.

type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, name, email string) (*models.User, error)
	CreateWithPassword(ctx context.Context, name, email, passwordHash string) (int, error)
	Update(ctx context.Context, id int, input models.UpdateUserInput) (*models.User, error)
	Remove(ctx context.Context, id int) (int64, error)
}

type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, input models.CreateOrderInput) (*models.Order, error)
}

type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

type SubjectFetcher interface {
	FetchAllSubjects(ctx context.Context) ([]models.CombinedSubject, error)
}

// Handler содержит зависимости обработчиков
type Handler struct {
	users    UserRepository
	orders   OrderRepository
	products ProductRepository
	subjects SubjectFetcher
	cfg      *config.Config
}

// NewHandler создает новый экземпляр Handler
func NewHandler(users UserRepository, orders OrderRepository, products ProductRepository, subjects SubjectFetcher, cfg *config.Config) *Handler {
	return &Handler{
		users:    users,
		orders:   orders,
		products: products,
		subjects: subjects,
		cfg:      cfg,
	}
}

// HomeHandler - проверка, что бэкенд жив
func (h *Handler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Backend is running!"))
}

// respondJSON пишет тело ответа как JSON с указанным статусом
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Ошибка записи JSON ответа: %v", err)
	}
}

// respondError - ошибки ресурсов в виде {"error": "..."}
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondMessage - сообщения auth-эндпоинтов в виде {"message": "..."}
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// handleError - единая точка перевода ошибок в HTTP-ответ.
// Всё, что не распознано, уходит клиенту как 500 без внутренних деталей.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, apperr.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, apperr.ErrInvalidCredentials):
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, apperr.ErrInvalidToken):
		respondMessage(w, http.StatusForbidden, "Invalid token")
	default:
		log.Printf("❌ Необработанная ошибка: %v", err)
		respondError(w, http.StatusInternalServerError, "Server Error")
	}
}
