package service

import (
	"context"

	"notes-api/internal/model"
)

// NoteService интерфейс для бизнес-логики работы с заметками
type NoteService interface {
	// Create создает новую заметку с указанными title и content
	Create(ctx context.Context, title, content string) (model.Note, error)

	// Get возвращает заметку по её ID
	Get(ctx context.Context, id string) (model.Note, error)

	// List возвращает все заметки, отсортированные по UpdatedAt по убыванию
	List(ctx context.Context) ([]model.Note, error)

	// Update заменяет title и content заметки с указанным ID
	Update(ctx context.Context, id, title, content string) (model.Note, error)

	// Delete удаляет заметку по ID. Возвращает true, если заметка существовала
	Delete(ctx context.Context, id string) (bool, error)
}
