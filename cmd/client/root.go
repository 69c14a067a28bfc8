package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var addr string

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "CLI client for the Notes API",
	Long:  `notes is a command line client for the Notes API: create, read, update, delete and watch notes over HTTP.`,
}

// Execute запускает корневую команду CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Адрес сервера: флаг --addr, переменная окружения NOTES_ADDR или значение по умолчанию
	defaultAddr := os.Getenv("NOTES_ADDR")
	if defaultAddr == "" {
		defaultAddr = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&addr, "addr", defaultAddr, "base address of the Notes API server")
}
