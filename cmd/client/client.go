package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"notes-api/internal/model"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// apiURL собирает полный URL эндпоинта из базового адреса сервера
func apiURL(path string) string {
	return strings.TrimRight(addr, "/") + path
}

// doJSON выполняет HTTP запрос с JSON телом (body может быть nil)
func doJSON(method, url string, body interface{}) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return httpClient.Do(req)
}

// apiError разбирает тело ошибки сервера в читаемое сообщение
func apiError(resp *http.Response) error {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error.Code == "" {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return fmt.Errorf("%s: %s", errResp.Error.Code, errResp.Error.Message)
}

// printNote печатает заметку в человекочитаемом виде
func printNote(n model.Note) {
	fmt.Printf("ID:        %s\n", n.ID)
	fmt.Printf("Title:     %s\n", n.Title)
	if n.Content != "" {
		fmt.Printf("Content:   %s\n", n.Content)
	}
	fmt.Printf("Created:   %s\n", n.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated:   %s\n", n.UpdatedAt.Format(time.RFC3339))
}
