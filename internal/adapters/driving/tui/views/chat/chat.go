// Package chat provides the question and answer view for the TUI.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/components/input"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
)

// View is the chat view. The message log lives in the chat service;
// this view renders snapshots of it, so the optimistic question shows
// up on the next frame while the round trip is still in flight.
type View struct {
	styles      *styles.Styles
	input       *input.PromptInput
	spinner     spinner.Model
	chatService driving.ChatService
	ctx         context.Context

	history      []domain.Exchange
	scrollOffset int
	pinToBottom  bool
	width        int
	height       int
	ready        bool
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, chatService driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Muted

	return &View{
		styles:      s,
		input:       input.NewPromptInput(s, "Ask: ", "Ask about the document..."),
		spinner:     sp,
		chatService: chatService,
		ctx:         context.Background(),
		pinToBottom: true,
		width:       80,
		height:      24,
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

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !v.chatService.Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.TurnSettled:
		v.pinToBottom = true
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocument}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewUpload}
		}
	case "up", "ctrl+k":
		v.pinToBottom = false
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
		return v, nil
	case "down", "ctrl+j":
		v.scrollOffset++
		return v, nil
	case "enter":
		text := strings.TrimSpace(v.input.Value())
		if text == "" || v.chatService.Loading() {
			return v, nil
		}
		v.input.Reset()
		v.pinToBottom = true
		return v, tea.Batch(v.performSend(text), v.spinner.Tick)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// performSend dispatches the question off the event loop. Send blocks
// until the answer settles; the log shows the question immediately.
func (v *View) performSend(text string) tea.Cmd {
	return func() tea.Msg {
		v.chatService.Send(v.ctx, text)
		return messages.TurnSettled{}
	}
}

// View renders the chat view.
func (v *View) View() string {
	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("Chat"), "")

	logLines := v.renderLog()
	visible := v.visibleLines()
	offset := v.clampOffset(logLines, visible)
	end := offset + visible
	if end > len(logLines) {
		end = len(logLines)
	}
	sections = append(sections, strings.Join(logLines[offset:end], "\n"))

	if v.chatService.Loading() {
		sections = append(sections, v.spinner.View()+v.styles.Muted.Render(" thinking..."))
	}

	sections = append(sections, "", v.input.View(), "",
		v.styles.Muted.Render("enter: send | tab: document | esc: upload"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLog flattens the message log into styled display lines.
// Exchanges replayed from a previous session come first, muted, so the
// live conversation reads below them.
func (v *View) renderLog() []string {
	width := v.width - 4
	if width < 20 {
		width = 20
	}

	var lines []string
	if len(v.history) > 0 {
		lines = append(lines, v.styles.Muted.Render("Earlier:"))
		for _, ex := range v.history {
			for _, text := range []string{"You: " + ex.Query, "Assistant: " + ex.Response} {
				wrapped := lipgloss.NewStyle().Width(width).Render(text)
				for _, line := range strings.Split(wrapped, "\n") {
					lines = append(lines, v.styles.Muted.Render(line))
				}
			}
		}
		lines = append(lines, "")
	}

	for _, msg := range v.chatService.Messages() {
		prefix := "Assistant: "
		style := v.styles.Answer
		if msg.Role == domain.RoleQuestion {
			prefix = "You: "
			style = v.styles.Question
		}

		wrapped := lipgloss.NewStyle().Width(width).Render(prefix + msg.Content)
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, style.Render(line))
		}

		for _, src := range msg.Sources {
			lines = append(lines, v.styles.Muted.Render(
				fmt.Sprintf("  [p.%d] %s", src.Page, src.Text)))
		}
		lines = append(lines, "")
	}
	return lines
}

// visibleLines returns how many log lines fit on screen.
func (v *View) visibleLines() int {
	// Header, input, and hint rows are fixed
	visible := v.height - 8
	if visible < 3 {
		visible = 3
	}
	return visible
}

// clampOffset bounds the scroll position, pinning to the newest
// messages unless the user scrolled away.
func (v *View) clampOffset(lines []string, visible int) int {
	max := len(lines) - visible
	if max < 0 {
		max = 0
	}
	if v.pinToBottom || v.scrollOffset > max {
		v.scrollOffset = max
	}
	return v.scrollOffset
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Input returns the current input value.
func (v *View) Input() string {
	return v.input.Value()
}

// SetInput sets the input value (for testing).
func (v *View) SetInput(text string) {
	v.input.SetValue(text)
}

// SetHistory replaces the replayed exchanges shown above the live log.
func (v *View) SetHistory(exchanges []domain.Exchange) {
	v.history = exchanges
}

// Reset clears the input, scroll state and replayed history.
func (v *View) Reset() {
	v.input.Reset()
	v.history = nil
	v.scrollOffset = 0
	v.pinToBottom = true
}
