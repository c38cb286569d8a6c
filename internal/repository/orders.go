package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"myapp/internal/apperr"
	"myapp/internal/models"
)

// dateLayout - канонический вид даты заказа в базе (DATETIME)
const dateLayout = "2006-01-02 15:04:05"

// orderDateLayouts - форматы, которые принимаем на входе
var orderDateLayouts = []string{
	time.RFC3339,
	dateLayout,
	"2006-01-02",
}

// OrderRepository - доступ к таблице orders
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetAll возвращает все заказы
func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, customer, total, date FROM orders")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var date sql.NullString
		if err := rows.Scan(&o.ID, &o.Customer, &o.Total, &date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		o.Date = date.String
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return orders, nil
}

// Create нормализует дату и вставляет заказ.
// Возвращает созданную запись вместе со сгенерированным id.
func (r *OrderRepository) Create(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	date, err := normalizeDate(input.Date)
	if err != nil {
		return nil, err
	}

	var dateArg interface{}
	if date != "" {
		dateArg = date
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO orders (customer, total, date) VALUES (?, ?, ?)",
		input.Customer, input.Total, dateArg,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &models.Order{
		ID:       int(id),
		Customer: input.Customer,
		Total:    input.Total,
		Date:     date,
	}, nil
}

// normalizeDate приводит дату к виду "2006-01-02 15:04:05" (UTC).
// Пустая дата остается пустой - в базу уйдет NULL.
func normalizeDate(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(dateLayout), nil
		}
	}

	return "", apperr.NewValidation("Invalid date format")
}
