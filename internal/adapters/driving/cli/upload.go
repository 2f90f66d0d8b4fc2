package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a document for processing",
	Long: `Uploads a file to the processing service. The service converts it
to markdown and makes it available for viewing and chat. The uploaded
document becomes the active document for subsequent commands.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if uploadService == nil {
		return errors.New("upload service not configured")
	}

	path := args[0]
	cmd.Printf("Uploading %s...\n", path)

	record, err := uploadService.Upload(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded %s (pk=%d)\n", record.DisplayName(), record.PK)
	if record.ProcessingStatus != "" {
		cmd.Printf("Processing status: %s\n", record.ProcessingStatus)
	}
	cmd.Println("Run 'docchat view' to read it or 'docchat ask' to chat about it.")
	return nil
}
