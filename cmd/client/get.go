package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"notes-api/internal/model"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a note by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := doJSON(http.MethodGet, apiURL("/api/v1/notes/"+args[0]), nil)
		if err != nil {
			fmt.Printf("Error getting note: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			fmt.Printf("Error getting note: %v\n", apiError(resp))
			os.Exit(1)
		}

		var note model.Note
		if err := json.NewDecoder(resp.Body).Decode(&note); err != nil {
			fmt.Printf("Error decoding response: %v\n", err)
			os.Exit(1)
		}

		printNote(note)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
