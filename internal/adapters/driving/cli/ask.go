package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

var askSources bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the active document",
	Long: `Sends a question to the chat service and prints the answer.
Requires an active document; upload one first with 'docchat upload'.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askSources, "sources", false, "show source citations with the answer")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if chatService == nil || recordService == nil {
		return errors.New("chat service not configured")
	}

	question := strings.TrimSpace(args[0])
	if question == "" {
		return errors.New("question must not be empty")
	}

	record := recordService.Current()
	if record == nil {
		return errors.New("no active document; upload one first with 'docchat upload'")
	}

	before := len(chatService.Messages())
	chatService.Send(cmd.Context(), question)

	messages := chatService.Messages()
	if len(messages) <= before {
		return errors.New("no answer received")
	}

	answer := messages[len(messages)-1]
	cmd.Println(answer.Content)

	if askSources && len(answer.Sources) > 0 {
		cmd.Println()
		printSources(cmd, answer.Sources)
	}
	return nil
}

func printSources(cmd *cobra.Command, sources []domain.Citation) {
	cmd.Println("Sources:")
	for _, src := range sources {
		cmd.Printf("  [p.%d] %s\n", src.Page, src.Text)
	}
}
