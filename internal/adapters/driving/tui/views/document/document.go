// Package document provides the markdown reading view for the TUI.
package document

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// View renders the active document's markdown conversion with
// scrolling. Rendering happens once per record or resize; scrolling
// walks the pre-rendered lines.
type View struct {
	styles *styles.Styles

	record       *domain.DocumentRecord
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	renderErr    error
}

// NewView creates a new document view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetRecord sets the document record and renders its markdown.
func (v *View) SetRecord(record *domain.DocumentRecord) {
	v.record = record
	v.scrollOffset = 0
	v.render()
}

// render converts the markdown content into display lines.
func (v *View) render() {
	v.lines = nil
	v.renderErr = nil

	if v.record == nil || v.record.MarkdownContent == "" {
		return
	}

	width := v.width - 2
	if width < 20 {
		width = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		v.renderErr = err
		return
	}

	rendered, err := renderer.Render(v.record.MarkdownContent)
	if err != nil {
		v.renderErr = err
		return
	}

	v.lines = strings.Split(strings.TrimRight(rendered, "\n"), "\n")
}

// Update handles messages for the document view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case "pgdown", "ctrl+d":
		v.scrollOffset += v.visibleLines()
		if max := v.maxScrollOffset(); v.scrollOffset > max {
			v.scrollOffset = max
		}
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	case "tab":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewChat}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewUpload}
		}
	}
	return v, nil
}

// visibleLines returns how many content lines fit on screen.
func (v *View) visibleLines() int {
	// Header, separator, and status line take four rows
	visible := v.height - 4
	if visible < 1 {
		visible = 1
	}
	return visible
}

// maxScrollOffset returns the furthest allowed scroll position.
func (v *View) maxScrollOffset() int {
	max := len(v.lines) - v.visibleLines()
	if max < 0 {
		max = 0
	}
	return max
}

// View renders the document view.
func (v *View) View() string {
	sections := make([]string, 0, 6)

	title := "Document"
	if v.record != nil {
		title = v.record.DisplayName()
	}
	sections = append(sections, v.styles.Title.Render(title), "")

	switch {
	case v.record == nil:
		sections = append(sections, v.styles.Muted.Render("No document uploaded yet."))
	case v.renderErr != nil:
		sections = append(sections, v.styles.Error.Render("Render error: "+v.renderErr.Error()))
	case len(v.lines) == 0:
		status := string(v.record.ProcessingStatus)
		if status == "" {
			status = "unknown"
		}
		sections = append(sections, v.styles.Muted.Render(
			fmt.Sprintf("No content yet (status: %s).", status)))
	default:
		end := v.scrollOffset + v.visibleLines()
		if end > len(v.lines) {
			end = len(v.lines)
		}
		sections = append(sections, strings.Join(v.lines[v.scrollOffset:end], "\n"))
	}

	sections = append(sections, "",
		v.styles.Muted.Render("tab: chat | esc: upload | ↑/↓: scroll"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions and re-renders for the width.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.render()
}

// ScrollOffset returns the current scroll position.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// LineCount returns the number of rendered lines.
func (v *View) LineCount() int {
	return len(v.lines)
}
