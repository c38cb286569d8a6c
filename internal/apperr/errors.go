package apperr

import "errors"

// Общие ошибки приложения. Обработчики переводят их в HTTP-статусы
// в одном месте (classifyError), чтобы не размазывать коды по коду.
var (
	// ErrNotFound - запись отсутствует в хранилище
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials - неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken - подпись, срок или полезная нагрузка токена не прошли проверку
	ErrInvalidToken = errors.New("invalid token")

	// ErrNoSecret - не задан секрет для подписи токенов
	ErrNoSecret = errors.New("jwt secret is not set")
)

// ValidationError - некорректные входные данные запроса (400)
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation создает ValidationError с текстом для клиента
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation проверяет, является ли ошибка ошибкой валидации
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
