package model

import (
	"strings"
	"time"
)

// Note представляет заметку (доменная модель)
type Note struct {
	ID        string    `json:"id"`        // UUID заметки
	Title     string    `json:"title"`     // Заголовок заметки
	Content   string    `json:"content"`   // Содержание заметки
	CreatedAt time.Time `json:"createdAt"` // Дата создания (UTC)
	UpdatedAt time.Time `json:"updatedAt"` // Дата последнего обновления (UTC)
}

// ValidationError описывает нарушение ограничения поля заметки
type ValidationError struct {
	Field   string // Поле, не прошедшее валидацию
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Normalize обрезает пробелы в начале и конце title и content.
// Отсутствующий content становится пустой строкой.
func Normalize(title, content string) (string, string) {
	return strings.TrimSpace(title), strings.TrimSpace(content)
}

// ValidateTitle проверяет, что title не пуст после обрезки пробелов
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "title cannot be empty"}
	}
	return nil
}

// Validate проверяет валидность заметки
func (n *Note) Validate() error {
	return ValidateTitle(n.Title)
}

// IsEmpty проверяет, пуста ли заметка
func (n *Note) IsEmpty() bool {
	return n.ID == "" && n.Title == "" && n.Content == ""
}
