package repository

import (
	"context"
	"fmt"
	"log"

	"myapp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// seedSubject - единственная запись, которой засеваем пустую коллекцию
var seedSubject = models.MongoSubject{
	ID:               999,
	Label:            "hr",
	Value:            "Dział HR",
	IsFromLoggedUser: true,
}

// MongoSubjectRepository - доступ к коллекции mongosubjects в MongoDB
type MongoSubjectRepository struct {
	coll *mongo.Collection
}

func NewMongoSubjectRepository(db *mongo.Database) *MongoSubjectRepository {
	return &MongoSubjectRepository{coll: db.Collection("mongosubjects")}
}

// GetAll возвращает все документы коллекции
func (r *MongoSubjectRepository) GetAll(ctx context.Context) ([]models.MongoSubject, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}
	defer cursor.Close(ctx)

	subjects := []models.MongoSubject{}
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}

	return subjects, nil
}

// EnsureSeeded вставляет стартовую запись, если коллекция пуста.
// Повторный вызов ничего не делает.
func (r *MongoSubjectRepository) EnsureSeeded(ctx context.Context) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("mongo error: %w", err)
	}

	if count > 0 {
		log.Printf("Коллекция mongosubjects уже содержит %d документов, сид не нужен", count)
		return nil
	}

	log.Println("Коллекция mongosubjects пуста, добавляем стартовую запись...")
	if _, err := r.coll.InsertOne(ctx, seedSubject); err != nil {
		return fmt.Errorf("mongo error: %w", err)
	}

	log.Println("✅ Стартовая запись добавлена")
	return nil
}
