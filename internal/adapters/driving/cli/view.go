package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var viewRaw bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View the active document as markdown",
	Long: `Renders the markdown conversion of the active document to the
terminal. Use --raw to print the unrendered markdown source.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&viewRaw, "raw", false, "print raw markdown without rendering")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	record := recordService.Current()
	if record == nil {
		return errors.New("no active document; upload one first with 'docchat upload'")
	}

	content := record.MarkdownContent
	if content == "" {
		cmd.Printf("%s has no markdown content yet (status: %s)\n",
			record.DisplayName(), record.ProcessingStatus)
		return nil
	}

	if viewRaw {
		cmd.Println(content)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}

	cmd.Print(rendered)
	return nil
}
