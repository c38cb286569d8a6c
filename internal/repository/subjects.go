package repository

import (
	"context"
	"database/sql"
	"fmt"

	"myapp/internal/models"
)

// SubjectRepository - доступ к таблице subjects в MySQL (только чтение)
type SubjectRepository struct {
	db *sql.DB
}

func NewSubjectRepository(db *sql.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// GetAll возвращает все предметы из MySQL
func (r *SubjectRepository) GetAll(ctx context.Context) ([]models.Subject, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, label, value FROM subjects")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Label, &s.Value); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return subjects, nil
}
