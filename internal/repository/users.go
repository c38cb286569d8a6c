package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"myapp/internal/apperr"
	"myapp/internal/models"
)

// UserRepository - доступ к таблице users
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetAll возвращает всех пользователей. Пароль не выбираем никогда.
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, email FROM users")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

// GetByID возвращает пользователя по id или apperr.ErrNotFound
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email FROM users WHERE id = ?", id,
	).Scan(&u.ID, &u.Name, &u.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &u, nil
}

// GetByEmail возвращает пользователя с хэшем пароля - путь для логина.
// Пароль в базе может быть NULL (пользователи, созданные без регистрации).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	var password sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, password FROM users WHERE email = ?", email,
	).Scan(&u.ID, &u.Name, &password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	u.Email = email
	u.Password = password.String
	return &u, nil
}

// ExistsByEmail - проверка перед регистрацией.
// Проверка и вставка не атомарны, гонка двух одинаковых регистраций возможна.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM users WHERE email = ?", email,
	).Scan(&id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}

	return true, nil
}

// Create создает пользователя без пароля (админский POST /users)
func (r *UserRepository) Create(ctx context.Context, name, email string) (*models.User, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (name, email) VALUES (?, ?)", name, email,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &models.User{ID: int(id), Name: name, Email: email}, nil
}

// CreateWithPassword создает пользователя с хэшем пароля (регистрация)
func (r *UserRepository) CreateWithPassword(ctx context.Context, name, email, passwordHash string) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password) VALUES (?, ?, ?)", name, email, passwordHash,
	)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return int(id), nil
}

// Update собирает SET только из переданных полей.
// Данные пользователя никогда не конкатенируются в SQL - только плейсхолдеры.
func (r *UserRepository) Update(ctx context.Context, id int, input models.UpdateUserInput) (*models.User, error) {
	updates := []string{}
	params := []interface{}{}

	if input.Name != nil {
		updates = append(updates, "name = ?")
		params = append(params, *input.Name)
	}
	if input.Email != nil {
		updates = append(updates, "email = ?")
		params = append(params, *input.Email)
	}

	// Нечего обновлять - возвращаем запись как есть
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	params = append(params, id)
	query := "UPDATE users SET " + strings.Join(updates, ", ") + " WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, apperr.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Remove удаляет пользователя, возвращает число удалённых строк (0 или 1)
func (r *UserRepository) Remove(ctx context.Context, id int) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}
