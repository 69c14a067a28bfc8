package notes

import (
	"context"
	"sort"

	"notes-api/internal/model"
	"notes-api/internal/repository"
	svc "notes-api/internal/service"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	noteRepository repository.NoteRepository
	events         *EventService
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками.
// events получает уведомления о создании, обновлении и удалении заметок
func NewNoteService(noteRepository repository.NoteRepository, events *EventService) svc.NoteService {
	return &service{
		noteRepository: noteRepository,
		events:         events,
	}
}

// Create создает новую заметку с указанными title и content
func (s *service) Create(ctx context.Context, title, content string) (model.Note, error) {
	// Нормализация: обрезаем пробелы, пустой content допустим
	title, content = model.Normalize(title, content)

	// Валидация: title не должен быть пустым
	if err := model.ValidateTitle(title); err != nil {
		return model.Note{}, err
	}

	note := model.Note{
		Title:   title,
		Content: content,
	}

	// Сохраняем через репозиторий (UUID и временные метки назначит репозиторий)
	createdNote, err := s.noteRepository.Create(ctx, note)
	if err != nil {
		return model.Note{}, err
	}

	s.events.Publish(Event{Type: EventCreated, Note: createdNote})

	return createdNote, nil
}

// Get возвращает заметку по её ID
func (s *service) Get(ctx context.Context, id string) (model.Note, error) {
	if id == "" {
		return model.Note{}, &model.ValidationError{Field: "id", Message: "id cannot be empty"}
	}

	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		return model.Note{}, err
	}

	return note, nil
}

// List возвращает все заметки, отсортированные по UpdatedAt по убыванию.
// При равных UpdatedAt порядок детерминирован: по ID по возрастанию
func (s *service) List(ctx context.Context) ([]model.Note, error) {
	notes, err := s.noteRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(notes, func(i, j int) bool {
		if notes[i].UpdatedAt.Equal(notes[j].UpdatedAt) {
			return notes[i].ID < notes[j].ID
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes, nil
}

// Update заменяет title и content заметки с указанным ID.
// Пустой после обрезки пробелов title отклоняется, заметка остается без изменений
func (s *service) Update(ctx context.Context, id, title, content string) (model.Note, error) {
	if id == "" {
		return model.Note{}, &model.ValidationError{Field: "id", Message: "id cannot be empty"}
	}

	title, content = model.Normalize(title, content)

	if err := model.ValidateTitle(title); err != nil {
		return model.Note{}, err
	}

	note := model.Note{
		ID:      id,
		Title:   title,
		Content: content,
	}

	// Репозиторий проверит существование и обновит UpdatedAt атомарно
	updatedNote, err := s.noteRepository.Update(ctx, note)
	if err != nil {
		return model.Note{}, err
	}

	s.events.Publish(Event{Type: EventUpdated, Note: updatedNote})

	return updatedNote, nil
}

// Delete удаляет заметку по ID. Возвращает true, если заметка существовала
func (s *service) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, &model.ValidationError{Field: "id", Message: "id cannot be empty"}
	}

	deleted, err := s.noteRepository.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.events.Publish(Event{Type: EventDeleted, Note: model.Note{ID: id}})
	}

	return deleted, nil
}
