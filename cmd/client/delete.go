package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note. There is no undo.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := doJSON(http.MethodDelete, apiURL("/api/v1/notes/"+args[0]), nil)
		if err != nil {
			fmt.Printf("Error deleting note: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			fmt.Printf("Error deleting note: %v\n", apiError(resp))
			os.Exit(1)
		}

		fmt.Printf("Note deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
