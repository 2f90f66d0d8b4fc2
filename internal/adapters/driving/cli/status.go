package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active document and service health",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	record := recordService.Current()
	if record == nil {
		cmd.Println("Active document: none")
	} else {
		cmd.Printf("Active document: %s (pk=%d)\n", record.DisplayName(), record.PK)
		if record.ProcessingStatus != "" {
			cmd.Printf("Processing status: %s\n", record.ProcessingStatus)
		}
		if record.FileSize > 0 {
			cmd.Printf("File size: %d bytes\n", record.FileSize)
		}
	}

	if healthChecker != nil {
		if err := healthChecker.Health(cmd.Context()); err != nil {
			cmd.Printf("Service: unreachable (%v)\n", err)
		} else {
			cmd.Println("Service: ok")
		}
	}
	return nil
}
