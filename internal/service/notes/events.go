package notes

import (
	"sync"

	"notes-api/internal/model"
)

// EventType тип события жизненного цикла заметки
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Event событие изменения заметки.
// Для удаленных заметок заполнен только Note.ID
type Event struct {
	Type EventType  `json:"type"`
	Note model.Note `json:"note"`
}

// EventService управляет подписчиками на события изменения заметок
type EventService struct {
	subscribers map[chan Event]bool
	mu          sync.RWMutex
	closed      bool
}

// NewEventService создает новый экземпляр EventService
func NewEventService() *EventService {
	return &EventService{
		subscribers: make(map[chan Event]bool),
	}
}

// Subscribe добавляет нового подписчика и возвращает канал для получения событий.
// После Close возвращается уже закрытый канал
func (s *EventService) Subscribe() chan Event {
	ch := make(chan Event, 10) // Буферизованный канал для защиты от backpressure
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.subscribers[ch] = true
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал
func (s *EventService) Unsubscribe(ch chan Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[ch]; ok {
		close(ch)
		delete(s.subscribers, ch)
	}
}

// Publish отправляет событие всем подписчикам.
// Если канал подписчика переполнен, событие пропускается (защита от backpressure)
func (s *EventService) Publish(event Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subscribers {
		select {
		case ch <- event:
			// Событие успешно отправлено
		default:
			// Канал переполнен, пропускаем
		}
	}
}

// Close закрывает каналы всех подписчиков.
// Вызывается при graceful shutdown сервера
func (s *EventService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for ch := range s.subscribers {
		close(ch)
		delete(s.subscribers, ch)
	}
}
