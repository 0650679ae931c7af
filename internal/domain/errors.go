package domain

import (
	"errors"
	"fmt"
)

// ErrPlayerNotFound - в долговременном хранилище нет записи для
// аутентифицированного игрока. Серверная аномалия, вход прерывается.
var ErrPlayerNotFound = errors.New("player record not found")

// ValidationError - команда отклонена до каких-либо мутаций.
// Reason уходит клиенту как есть в событии *_failed.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid создает ValidationError с готовым текстом причины.
func Invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation проверяет, является ли ошибка отказом валидации.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
