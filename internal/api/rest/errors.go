package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"notes-api/internal/model"
	"notes-api/internal/repository/memory"
)

// errorDetails машиночитаемое описание ошибки в теле ответа
type errorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	NoteID  string `json:"noteId,omitempty"`
}

type errorResponse struct {
	Error errorDetails `json:"error"`
}

// writeJSON сериализует v в тело ответа с указанным статусом
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, details errorDetails) {
	writeJSON(w, status, errorResponse{Error: details})
}

// handleError конвертирует внутренние ошибки в HTTP статусы с детализацией.
// ValidationError и NotFound — ожидаемые исходы операций, не сбои сервиса
func handleError(w http.ResponseWriter, err error, noteID string) {
	if errors.Is(err, memory.ErrNoteNotFound) {
		writeError(w, http.StatusNotFound, errorDetails{
			Code:    "NOTE_NOT_FOUND",
			Message: "note not found",
			NoteID:  noteID,
		})
		return
	}

	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, errorDetails{
			Code:    "VALIDATION_ERROR",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})
		return
	}

	// Все остальные ошибки - Internal
	writeError(w, http.StatusInternalServerError, errorDetails{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
	})
}
