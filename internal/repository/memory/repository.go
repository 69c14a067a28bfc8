package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"notes-api/internal/model"
	"notes-api/internal/repository"

	"github.com/google/uuid"
)

// ErrNoteNotFound возвращается, когда заметка не найдена
var ErrNoteNotFound = errors.New("note not found")

var _ repository.NoteRepository = (*repo)(nil)

type repo struct {
	mu    sync.RWMutex
	notes map[string]model.Note
}

// NewRepository создает новый экземпляр in-memory репозитория на основе map.
// Заметки хранятся по значению: наружу всегда уходят копии, ссылки на
// содержимое map не покидают репозиторий.
func NewRepository() repository.NoteRepository {
	return &repo{
		notes: make(map[string]model.Note),
	}
}

// Create создает новую заметку и возвращает созданную заметку с ID.
// ID и временные метки назначает репозиторий, переданные значения игнорируются
func (r *repo) Create(ctx context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Генерируем UUID (128 бит случайности, коллизии пренебрежимо маловероятны)
	note.ID = uuid.NewString()

	// Устанавливаем временные метки: при создании CreatedAt == UpdatedAt
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	// Сохраняем заметку
	r.notes[note.ID] = note

	return note, nil
}

// GetByID возвращает заметку по её ID
func (r *repo) GetByID(ctx context.Context, id string) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[id]
	if !exists {
		return model.Note{}, ErrNoteNotFound
	}

	return note, nil
}

// List возвращает снапшот всех заметок.
// Последующие мутации хранилища не влияют на уже возвращенный слайс
func (r *repo) List(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]model.Note, 0, len(r.notes))
	for _, note := range r.notes {
		notes = append(notes, note)
	}

	return notes, nil
}

// Update заменяет title и content существующей заметки.
// Проверка существования, перенос CreatedAt и обновление UpdatedAt выполняются
// под одной блокировкой: частично записанная заметка наружу не видна
func (r *repo) Update(ctx context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.notes[note.ID]
	if !exists {
		return model.Note{}, ErrNoteNotFound
	}

	// CreatedAt неизменяем, UpdatedAt обновляется хранилищем
	note.CreatedAt = existing.CreatedAt
	note.UpdatedAt = time.Now().UTC()

	r.notes[note.ID] = note

	return note, nil
}

// Delete удаляет заметку по ID.
// Отсутствие заметки не является ошибкой: возвращается false
func (r *repo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[id]; !exists {
		return false, nil
	}

	delete(r.notes, id)

	return true, nil
}
