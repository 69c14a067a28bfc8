package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"notes-api/internal/model"

	"github.com/spf13/cobra"
)

var createContent string

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new note",
	Long:  `Create makes a new note with the given title and optional content. The server assigns the id and timestamps.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body := map[string]string{
			"title":   args[0],
			"content": createContent,
		}

		resp, err := doJSON(http.MethodPost, apiURL("/api/v1/notes"), body)
		if err != nil {
			fmt.Printf("Error creating note: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			fmt.Printf("Error creating note: %v\n", apiError(resp))
			os.Exit(1)
		}

		var note model.Note
		if err := json.NewDecoder(resp.Body).Decode(&note); err != nil {
			fmt.Printf("Error decoding response: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Note created: %s\n", note.ID)
	},
}

func init() {
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "note content")
	rootCmd.AddCommand(createCmd)
}
