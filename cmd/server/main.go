package main

import (
	"os"
	"os/signal"
	"syscall"

	"notes-api/internal/config"
	"notes-api/internal/logger"
	"notes-api/internal/server"

	"github.com/joho/godotenv"
)

const configFile = "config.yml"

func main() {
	// Загружаем .env если он есть: значения попадают в окружение
	// и подставляются в ${VAR:-default} внутри config.yml
	_ = godotenv.Load()

	// Загружаем конфигурацию из файла
	appConfig, err := config.InitConfig[config.Config](configFile)
	if err != nil {
		fallbackLog := logger.New("info")
		fallbackLog.Fatal().Err(err).Msg("Error initializing config")
	}

	log := logger.New(appConfig.Logger.Level)
	log.Info().Msg("Starting Notes API")

	srv, err := server.NewServer(appConfig, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	// Канал для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	errChan := srv.Start()

	// Ожидание сигнала или ошибки
	select {
	case err := <-errChan:
		log.Fatal().Err(err).Msg("Server error")
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received signal, starting graceful shutdown...")
	}

	if err := srv.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Shutdown finished with error")
	}

	log.Info().Msg("Notes API stopped")
}
