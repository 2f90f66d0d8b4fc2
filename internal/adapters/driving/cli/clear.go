package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var clearHistory bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the active document",
	Long: `Clears the active document so the next session starts fresh.
Clearing when no document is active is a no-op. Use --history to also
delete the stored chat history for the document.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearHistory, "history", false, "also delete stored chat history")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	record := recordService.Current()
	if record == nil {
		cmd.Println("No active document.")
		return nil
	}

	if clearHistory && historyService != nil {
		if err := historyService.Purge(cmd.Context(), record.PK); err != nil {
			return fmt.Errorf("deleting chat history: %w", err)
		}
	}

	recordService.Clear()
	if chatService != nil {
		chatService.Reset()
	}

	cmd.Printf("Cleared %s.\n", record.DisplayName())
	return nil
}
