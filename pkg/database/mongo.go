package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"myapp/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// ConnectMongo открывает соединение с MongoDB по URI из конфигурации
func ConnectMongo(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("не удалось подключиться к MongoDB: %v", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("не удалось проверить подключение к MongoDB: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDBName)

	log.Println("Подключение к MongoDB установлено")
	return nil
}

// GetMongoDB возвращает базу MongoDB
func GetMongoDB() *mongo.Database {
	if mongoDB == nil {
		log.Fatal("MongoDB не подключена! Сначала вызовите ConnectMongo()")
	}
	return mongoDB
}

func CloseMongo() {
	if mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		mongoClient.Disconnect(ctx)
		log.Println("Подключение к MongoDB закрыто")
	}
}
