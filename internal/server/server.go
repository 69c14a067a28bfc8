package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"notes-api/internal/api/rest"
	"notes-api/internal/api/rest/middleware"
	"notes-api/internal/config"
	"notes-api/internal/repository/memory"
	notesService "notes-api/internal/service/notes"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Server представляет HTTP сервер приложения
type Server struct {
	HTTPServer *http.Server
	Addr       string
	Config     *config.Config
	Log        zerolog.Logger

	// EventService закрывается при shutdown, чтобы завершить WebSocket стримы
	events *notesService.EventService
}

// NewServer создает и инициализирует новый экземпляр сервера.
// Компоненты собираются по цепочке DI: Repository → Service → Handler
func NewServer(cfg *config.Config, log zerolog.Logger) (*Server, error) {
	httpPort := cfg.Server.Port
	if httpPort == 0 {
		httpPort = 8080
		log.Warn().Msg("server.port is 0, using default 8080")
	}

	log.Info().Int("port", httpPort).Msg("📋 Config loaded")

	// Инициализация компонентов (DI): Repository → Service → Handler
	noteRepo := memory.NewRepository()
	log.Info().Msg("Initialized in-memory repository (map-based)")

	events := notesService.NewEventService()

	noteSvc := notesService.NewNoteService(noteRepo, events)
	log.Info().Msg("Initialized note service")

	noteHandler := rest.NewHandler(noteSvc, events, log)

	serveSwagger := cfg.Swagger != nil && cfg.Swagger.Enabled
	router := rest.NewRouter(noteHandler, serveSwagger)
	if serveSwagger {
		log.Info().Msg("📖 OpenAPI spec available at /swagger.json")
	}

	// Применение middleware (в обратном порядке выполнения):
	// 1. CORS (обработка CORS заголовков - самый внешний слой)
	// 2. Logging (логирует все запросы, включая заблокированные rate limiter'ом)
	// 3. Rate Limiting (ограничивает количество запросов)
	var handler http.Handler = router
	handler = middleware.RateLimit(handler, cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, log)
	handler = middleware.Logging(handler, log)
	handler = setupCORS(cfg.HTTP).Handler(handler)

	addr := "0.0.0.0:" + strconv.Itoa(httpPort)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.Server.HTTPReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.HTTPWriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.HTTPIdleTimeout) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.Server.HTTPReadHeaderTimeout) * time.Second,
	}

	return &Server{
		HTTPServer: httpServer,
		Addr:       addr,
		Config:     cfg,
		Log:        log,
		events:     events,
	}, nil
}

// Start запускает HTTP сервер в горутине.
// Возвращает канал ошибок для отслеживания ошибок сервера
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.Log.Info().Str("addr", s.Addr).Msg("HTTP server listening")
		s.Log.Info().Str("origins", s.Config.HTTP.CORSAllowedOrigins).Msg("CORS enabled")
		if err := s.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	return errChan
}

// Shutdown выполняет graceful shutdown сервера.
// Активным запросам дается время завершиться, WebSocket стримы
// закрываются через EventService
func (s *Server) Shutdown() error {
	s.Log.Info().Msg("Starting graceful shutdown...")

	// Закрываем каналы подписчиков, чтобы WebSocket стримы завершились
	// до остановки HTTP сервера
	s.events.Close()

	shutdownTimeout := time.Duration(s.Config.Server.GracefulShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.HTTPServer.Shutdown(ctx); err != nil {
		s.Log.Warn().Err(err).Msg("Graceful shutdown timeout, forcing close...")
		if closeErr := s.HTTPServer.Close(); closeErr != nil {
			return closeErr
		}
		return err
	}

	s.Log.Info().Msg("HTTP server stopped gracefully")
	return nil
}

// setupCORS настраивает CORS middleware используя конфигурацию
func setupCORS(cfg *config.ConfigHTTP) *cors.Cors {
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = 86400 // 24 часа по умолчанию
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"X-Requested-With",
		},
		AllowCredentials: true,
		MaxAge:           maxAge,
	})
}
