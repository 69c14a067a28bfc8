package repository

import (
	"context"

	"notes-api/internal/model"
)

// NoteRepository интерфейс для работы с заметками в хранилище
type NoteRepository interface {
	// Create создает новую заметку и возвращает созданную заметку с ID и временными метками
	Create(ctx context.Context, note model.Note) (model.Note, error)

	// GetByID возвращает заметку по её ID
	GetByID(ctx context.Context, id string) (model.Note, error)

	// List возвращает снапшот всех заметок (без гарантии порядка)
	List(ctx context.Context) ([]model.Note, error)

	// Update заменяет title и content существующей заметки и возвращает обновленную заметку.
	// ID и CreatedAt не изменяются, UpdatedAt обновляется хранилищем.
	Update(ctx context.Context, note model.Note) (model.Note, error)

	// Delete удаляет заметку по ID. Возвращает true, если заметка существовала
	Delete(ctx context.Context, id string) (bool, error)
}
