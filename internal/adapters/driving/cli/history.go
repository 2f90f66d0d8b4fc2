package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show chat history for the active document",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output history as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil || recordService == nil {
		return errors.New("history service not configured")
	}

	record := recordService.Current()
	if record == nil {
		return errors.New("no active document; upload one first with 'docchat upload'")
	}

	exchanges, err := historyService.List(cmd.Context(), record.PK)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if historyJSON {
		return outputHistoryJSON(cmd, exchanges)
	}
	return outputHistoryText(cmd, record, exchanges)
}

func outputHistoryJSON(cmd *cobra.Command, exchanges []domain.Exchange) error {
	data, err := json.MarshalIndent(exchanges, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHistoryText(cmd *cobra.Command, record *domain.DocumentRecord, exchanges []domain.Exchange) error {
	if len(exchanges) == 0 {
		cmd.Printf("No chat history for %s.\n", record.DisplayName())
		return nil
	}

	cmd.Printf("History for %s:\n\n", record.DisplayName())
	for _, ex := range exchanges {
		cmd.Printf("  [%s] Q: %s\n", ex.CreatedAt.Format("2006-01-02 15:04"), ex.Query)
		cmd.Printf("      A: %s\n\n", ex.Response)
	}
	return nil
}
