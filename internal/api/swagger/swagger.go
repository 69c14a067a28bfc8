package swagger

import (
	_ "embed"
	"net/http"
)

//go:embed notes.swagger.json
var swaggerJSON []byte

// Handler отдает OpenAPI спецификацию сервиса.
// CORS заголовки выставляются явно, чтобы спецификацию мог забрать
// Swagger UI, размещенный на другом origin
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(swaggerJSON)
	}
}
