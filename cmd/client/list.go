package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"notes-api/internal/model"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Long:  `List prints all notes ordered by last update time, most recent first.`,
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := doJSON(http.MethodGet, apiURL("/api/v1/notes"), nil)
		if err != nil {
			fmt.Printf("Error listing notes: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			fmt.Printf("Error listing notes: %v\n", apiError(resp))
			os.Exit(1)
		}

		var noteList []model.Note
		if err := json.NewDecoder(resp.Body).Decode(&noteList); err != nil {
			fmt.Printf("Error decoding response: %v\n", err)
			os.Exit(1)
		}

		if len(noteList) == 0 {
			fmt.Println("No notes")
			return
		}

		for _, n := range noteList {
			fmt.Printf("%s  %-30s  updated %s\n", n.ID, n.Title, n.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
