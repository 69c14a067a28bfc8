package rest

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Сервис не использует cookie-авторизацию, проверка Origin не требуется
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamEvents отдает события изменения заметок по WebSocket.
// Клиент получает JSON объекты {type, note} по мере изменений.
// Медленный клиент не блокирует мутации: события для него пропускаются
func (h *Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ch := h.events.Subscribe()
	defer h.events.Unsubscribe(ch)

	// Читаем входящие сообщения только для обнаружения закрытия соединения
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				// Сервер останавливается, EventService закрыл канал
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
