// Package cli provides the command line interface for docchat.
// Commands operate on the driving ports; the composition root injects
// concrete services through SetServices before Execute runs.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Injected services, set by the composition root.
var (
	recordService  driving.RecordService
	chatService    driving.ChatService
	uploadService  driving.UploadService
	historyService driving.HistoryService
	healthChecker  HealthChecker
)

// verbose enables debug logging for all commands.
var verbose bool

// HealthChecker probes the remote service.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Services bundles everything the commands need.
type Services struct {
	Record  driving.RecordService
	Chat    driving.ChatService
	Upload  driving.UploadService
	History driving.HistoryService
	Health  HealthChecker
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	recordService = s.Record
	chatService = s.Chat
	uploadService = s.Upload
	historyService = s.History
	healthChecker = s.Health
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "docchat",
	Short: "Chat with your documents from the terminal",
	Long: `Docchat uploads a document to the processing service and lets you
ask questions about it. The service converts the file to markdown,
indexes it, and answers questions grounded in the document content.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// The flag can only enable verbose logging. Leaving it off keeps
		// whatever the environment and config file resolved at startup.
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
