package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter настраивает все маршруты приложения
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.HomeHandler).Methods(http.MethodGet)

	// Аутентификация
	r.HandleFunc("/register", h.RegisterHandler).Methods(http.MethodPost)
	r.HandleFunc("/login", h.LoginHandler).Methods(http.MethodPost)
	r.HandleFunc("/protected", h.requireAuth(h.ProtectedHandler)).Methods(http.MethodGet)

	// Пользователи
	r.HandleFunc("/users", h.GetUsersHandler).Methods(http.MethodGet)
	r.HandleFunc("/users", h.CreateUserHandler).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", h.GetUserHandler).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", h.UpdateUserHandler).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", h.RemoveUserHandler).Methods(http.MethodDelete)

	// Предметы (MySQL + MongoDB)
	r.HandleFunc("/subjects", h.GetSubjectsHandler).Methods(http.MethodGet)

	// Заказы
	r.HandleFunc("/orders", h.GetOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders", h.CreateOrderHandler).Methods(http.MethodPost)

	// Товары
	r.HandleFunc("/products", h.GetProductsHandler).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.GetProductHandler).Methods(http.MethodGet)

	return r
}
