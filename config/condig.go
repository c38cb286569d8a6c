package config

import (
	"os"
	"time"

	"myapp/internal/apperr"
)

type Config struct {
	AppPort string

	// MySQL
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// MongoDB
	MongoURI    string
	MongoDBName string

	// JWT
	JWTSecret     string
	JWTExpiration time.Duration
}

// Load читает конфигурацию из переменных окружения.
// Без JWT_SECRET сервис не стартует.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, apperr.ErrNoSecret
	}

	jwtExpiration, err := time.ParseDuration(getEnv("JWT_EXPIRES_IN", "1h"))
	if err != nil {
		jwtExpiration = time.Hour
	}

	return &Config{
		AppPort: getEnv("APP_PORT", "4000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "myapp"),

		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGODB_DB", "myapp"),

		JWTSecret:     secret,
		JWTExpiration: jwtExpiration,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
