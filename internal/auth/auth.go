package auth

import (
	"net/http"
	"strings"
	"time"

	"myapp/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims - структура для JWT токена
type Claims struct {
	UserID int    `json:"id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// HashPassword - хэширование пароля (bcrypt, 10 раундов)
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword - проверка пароля. Для пустого или чужого хэша просто false.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken - создание JWT токена с id и name в claims
func GenerateToken(userID int, name string, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", apperr.ErrNoSecret
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken - проверка JWT токена.
// Любая причина отказа (подпись, срок, кривая нагрузка) наружу выглядит
// одинаково как ErrInvalidToken, чтобы не подсказывать, что именно не так.
func ValidateToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}

	if !token.Valid {
		return nil, apperr.ErrInvalidToken
	}

	// Строгая проверка нагрузки: без id и name токен не принимаем
	if claims.UserID == 0 || claims.Name == "" {
		return nil, apperr.ErrInvalidToken
	}

	return claims, nil
}

// GetTokenFromRequest - получение токена из заголовка Authorization
func GetTokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
