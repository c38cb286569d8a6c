package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"myapp/config"
	"myapp/internal/handler"
	"myapp/internal/repository"
	"myapp/internal/service"
	"myapp/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Загружаем .env файл
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден")
	}

	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	// Подключаемся к MySQL
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Ошибка подключения к MySQL: %v", err)
	}
	defer database.Close()

	// Подключаемся к MongoDB. Без неё /subjects неполон, поэтому падаем сразу.
	if err := database.ConnectMongo(cfg); err != nil {
		log.Fatalf("Ошибка подключения к MongoDB: %v", err)
	}
	defer database.CloseMongo()

	db := database.GetDB()
	mongoDB := database.GetMongoDB()

	// Репозитории
	users := repository.NewUserRepository(db)
	orders := repository.NewOrderRepository(db)
	products := repository.NewProductRepository(db)
	subjects := repository.NewSubjectRepository(db)
	mongoSubjects := repository.NewMongoSubjectRepository(mongoDB)

	// Сид коллекции до приема трафика. Неудача только логируется.
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongoSubjects.EnsureSeeded(seedCtx); err != nil {
		log.Printf("⚠️  Не удалось засеять коллекцию mongosubjects: %v", err)
	}
	cancel()

	// Сервис объединения предметов
	subjectService := service.NewSubjectService(subjects, mongoSubjects)

	// Создаем обработчик и маршруты
	h := handler.NewHandler(users, orders, products, subjectService, cfg)
	r := handler.NewRouter(h)

	// Запуск сервера
	log.Printf("Сервер запущен на http://localhost:%s", cfg.AppPort)
	log.Printf("База данных: %s", cfg.DBName)

	if err := http.ListenAndServe(":"+cfg.AppPort, r); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
