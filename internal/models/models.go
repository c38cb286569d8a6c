package models

// User - пользователь из таблицы users
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // хэш пароля, не отдаём в JSON
}

// CreateUserInput - данные для создания пользователя (POST /users)
type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserInput - данные для частичного обновления.
// Указатели, чтобы отличать "поле не передано" от пустой строки.
type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Subject - предмет из таблицы subjects (MySQL)
type Subject struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// MongoSubject - предмет из коллекции mongosubjects (MongoDB)
type MongoSubject struct {
	ID               int    `bson:"id" json:"id"`
	Label            string `bson:"label" json:"label"`
	Value            string `bson:"value" json:"value"`
	IsFromLoggedUser bool   `bson:"isFromLoggedUser" json:"isFromLoggedUser"`
}

// CombinedSubject - объединённый предмет из двух источников.
// Считается на каждый запрос, нигде не хранится.
type CombinedSubject struct {
	ID               int    `json:"id"`
	Label            string `json:"label"`
	Value            string `json:"value"`
	IsFromLoggedUser *bool  `json:"isFromLoggedUser,omitempty"` // только у записей из MongoDB
	SourceDB         string `json:"sourceDb"`                   // "mysql" или "mongodb"
}

// Order - заказ из таблицы orders
type Order struct {
	ID       int     `json:"id"`
	Customer string  `json:"customer"`
	Total    float64 `json:"total"`
	Date     string  `json:"date"` // нормализованный вид "2006-01-02 15:04:05"
}

// CreateOrderInput - данные для создания заказа (POST /orders)
type CreateOrderInput struct {
	Customer string  `json:"customer"`
	Total    float64 `json:"total"`
	Date     string  `json:"date"`
}

// Product - товар из таблицы product
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
