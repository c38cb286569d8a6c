package database

import (
	"database/sql"
	"fmt"
	"log"

	"myapp/config"

	_ "github.com/go-sql-driver/mysql"
)

var db *sql.DB // приватная переменная

// Connect открывает соединение с MySQL и проверяет его пингом
func Connect(cfg *config.Config) error {
	connStr := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	var err error
	db, err = sql.Open("mysql", connStr)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к базе данных: %v", err)
	}

	if err = db.Ping(); err != nil {
		return fmt.Errorf("не удалось проверить подключение: %v", err)
	}

	log.Println("Подключение к MySQL установлено")
	return nil
}

// GetDB возвращает соединение с БД
func GetDB() *sql.DB {
	if db == nil {
		log.Fatal("БД не подключена! Сначала вызовите Connect()")
	}
	return db
}

func Close() {
	if db != nil {
		db.Close()
		log.Println("Подключение к базе данных закрыто")
	}
}
