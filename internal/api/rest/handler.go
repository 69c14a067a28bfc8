package rest

import (
	"encoding/json"
	"net/http"

	"notes-api/internal/service"
	"notes-api/internal/service/notes"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// noteRequest тело запроса на создание и обновление заметки.
// content опционален: отсутствующее поле становится пустой строкой
type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Handler реализует HTTP хэндлеры для NotesService
type Handler struct {
	noteService service.NoteService
	events      *notes.EventService
	log         zerolog.Logger
}

// NewHandler создает новый экземпляр HTTP хэндлера
func NewHandler(noteService service.NoteService, events *notes.EventService, log zerolog.Logger) *Handler {
	return &Handler{
		noteService: noteService,
		events:      events,
		log:         log,
	}
}

// ListNotes возвращает все заметки, отсортированные по UpdatedAt по убыванию
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	noteList, err := h.noteService.List(r.Context())
	if err != nil {
		handleError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, noteList)
}

// GetNote возвращает заметку по её UUID
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	note, err := h.noteService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// CreateNote создает новую заметку
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorDetails{
			Code:    "VALIDATION_ERROR",
			Message: "invalid request body",
		})
		return
	}

	note, err := h.noteService.Create(r.Context(), req.Title, req.Content)
	if err != nil {
		handleError(w, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// UpdateNote обновляет существующую заметку
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorDetails{
			Code:    "VALIDATION_ERROR",
			Message: "invalid request body",
		})
		return
	}

	note, err := h.noteService.Update(r.Context(), id, req.Title, req.Content)
	if err != nil {
		handleError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// DeleteNote удаляет заметку по UUID
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.noteService.Delete(r.Context(), id)
	if err != nil {
		handleError(w, err, id)
		return
	}

	if !deleted {
		writeError(w, http.StatusNotFound, errorDetails{
			Code:    "NOTE_NOT_FOUND",
			Message: "note not found",
			NoteID:  id,
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Healthz проверка живости сервиса
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
