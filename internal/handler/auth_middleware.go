package handler

import (
	"context"
	"net/http"

	"myapp/internal/auth"
)

type contextKey string

const userContextKey contextKey = "user"

// requireAuth - middleware для защищённых маршрутов.
// Нет токена - 401, токен не прошел проверку - 403.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := auth.GetTokenFromRequest(r)
		if token == "" {
			respondMessage(w, http.StatusUnauthorized, "No token provided or invalid format")
			return
		}

		claims, err := auth.ValidateToken(token, []byte(h.cfg.JWTSecret))
		if err != nil {
			respondMessage(w, http.StatusForbidden, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// claimsFromContext достает claims, положенные requireAuth
func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(userContextKey).(*auth.Claims)
	return claims
}
