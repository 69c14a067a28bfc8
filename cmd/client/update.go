package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	updateTitle   string
	updateContent string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a note",
	Long:  `Update replaces the title and content of an existing note. The id and creation time never change.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body := map[string]string{
			"title":   updateTitle,
			"content": updateContent,
		}

		resp, err := doJSON(http.MethodPut, apiURL("/api/v1/notes/"+args[0]), body)
		if err != nil {
			fmt.Printf("Error updating note: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			fmt.Printf("Error updating note: %v\n", apiError(resp))
			os.Exit(1)
		}

		fmt.Printf("Note updated: %s\n", args[0])
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new note title (required)")
	updateCmd.Flags().StringVarP(&updateContent, "content", "c", "", "new note content")
	_ = updateCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(updateCmd)
}
