package service

import (
	"context"
	"log"

	"myapp/internal/models"
)

// SQLSubjectGetter - чтение предметов из MySQL
type SQLSubjectGetter interface {
	GetAll(ctx context.Context) ([]models.Subject, error)
}

// MongoSubjectGetter - чтение предметов из MongoDB
type MongoSubjectGetter interface {
	GetAll(ctx context.Context) ([]models.MongoSubject, error)
}

// SubjectService объединяет предметы из двух источников в один список
type SubjectService struct {
	sql   SQLSubjectGetter
	mongo MongoSubjectGetter
}

func NewSubjectService(sql SQLSubjectGetter, mongo MongoSubjectGetter) *SubjectService {
	return &SubjectService{sql: sql, mongo: mongo}
}

// FetchAllSubjects возвращает предметы из обеих баз одним списком:
// сначала все из MySQL с sourceDb="mysql", затем все из MongoDB с
// sourceDb="mongodb". Без сортировки и без дедупликации - id могут
// совпадать между источниками. Ошибка любого источника - ошибка всего вызова.
func (s *SubjectService) FetchAllSubjects(ctx context.Context) ([]models.CombinedSubject, error) {
	mysqlSubjects, err := s.sql.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Получено %d предметов из MySQL", len(mysqlSubjects))

	mongoSubjects, err := s.mongo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Получено %d предметов из MongoDB", len(mongoSubjects))

	combined := []models.CombinedSubject{}

	for _, sub := range mysqlSubjects {
		combined = append(combined, models.CombinedSubject{
			ID:       sub.ID,
			Label:    sub.Label,
			Value:    sub.Value,
			SourceDB: "mysql",
		})
	}

	for _, sub := range mongoSubjects {
		flag := sub.IsFromLoggedUser
		combined = append(combined, models.CombinedSubject{
			ID:               sub.ID,
			Label:            sub.Label,
			Value:            sub.Value,
			IsFromLoggedUser: &flag,
			SourceDB:         "mongodb",
		})
	}

	return combined, nil
}
