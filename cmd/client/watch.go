package main

import (
	"fmt"
	"os"
	"strings"

	"notes-api/internal/service/notes"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch note events",
	Long:  `Watch subscribes to the server event stream over WebSocket and prints created, updated and deleted notes as they happen.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Преобразуем базовый HTTP адрес в WebSocket URL
		wsAddr := strings.Replace(addr, "https://", "wss://", 1)
		wsAddr = strings.Replace(wsAddr, "http://", "ws://", 1)
		wsURL := strings.TrimRight(wsAddr, "/") + "/api/v1/notes/events"

		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			fmt.Printf("Error connecting to %s: %v\n", wsURL, err)
			os.Exit(1)
		}
		defer conn.Close()

		fmt.Printf("Watching events at %s (Ctrl+C to stop)\n", wsURL)

		for {
			var event notes.Event
			if err := conn.ReadJSON(&event); err != nil {
				fmt.Printf("Connection closed: %v\n", err)
				return
			}

			switch event.Type {
			case notes.EventDeleted:
				fmt.Printf("[%s] %s\n", event.Type, event.Note.ID)
			default:
				fmt.Printf("[%s] %s  %q\n", event.Type, event.Note.ID, event.Note.Title)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
