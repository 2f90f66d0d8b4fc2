// Package upload provides the file selection and upload view for the TUI.
package upload

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/components/input"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
)

// View is the upload view. It prompts for a file path and drives one
// upload at a time; a failed upload leaves the prompt ready for
// another attempt.
type View struct {
	styles        *styles.Styles
	input         *input.PromptInput
	uploadService driving.UploadService
	ctx           context.Context

	uploading bool
	err       error
	width     int
	height    int
	ready     bool
}

// NewView creates a new upload view.
func NewView(s *styles.Styles, uploadService driving.UploadService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:        s,
		input:         input.NewPromptInput(s, "File: ", "Path to a document..."),
		uploadService: uploadService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.UploadFinished:
		v.uploading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.input.Focus()
			return v, nil
		}
		v.err = nil
		v.input.Reset()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Ignore input while an upload is in flight
	if v.uploading {
		return v, nil
	}

	switch msg.String() {
	case "q":
		if v.input.Value() == "" {
			return v, func() tea.Msg { return messages.Quit{} }
		}
	case "enter":
		path := strings.TrimSpace(v.input.Value())
		if path == "" {
			return v, nil
		}
		v.uploading = true
		v.err = nil
		v.input.Blur()
		return v, v.performUpload(path)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// performUpload runs the upload off the event loop.
func (v *View) performUpload(path string) tea.Cmd {
	return func() tea.Msg {
		record, err := v.uploadService.Upload(v.ctx, path)
		return messages.UploadFinished{Record: record, Err: err}
	}
}

// View renders the upload view.
func (v *View) View() string {
	sections := make([]string, 0, 8)

	sections = append(sections,
		v.styles.Title.Render("Docchat"),
		"",
		v.styles.Normal.Render("Upload a document to start chatting about it."),
		"",
		v.input.View(),
	)

	if v.uploading {
		sections = append(sections, "", v.styles.Muted.Render("Uploading "+v.uploadService.Filename()+"..."))
	}

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "",
		v.styles.Muted.Render("enter: upload | q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Uploading reports whether an upload is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// Err returns the last upload failure, if any.
func (v *View) Err() error {
	return v.err
}

// Reset restores the initial prompt state.
func (v *View) Reset() {
	v.uploading = false
	v.err = nil
	v.input.Reset()
}

// SetPath sets the path input value (for testing).
func (v *View) SetPath(path string) {
	v.input.SetValue(path)
}

// State returns the upload lifecycle state from the service.
func (v *View) State() domain.UploadState {
	return v.uploadService.State()
}
