package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/components/status"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/views/chat"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/views/document"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/views/upload"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// uploadView is the file selection and upload view.
	uploadView *upload.View

	// documentView is the markdown reading view.
	documentView *document.View

	// chatView is the question and answer view.
	chatView *chat.View

	// statusBar shows the active document, state and key hints.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	uploadView := upload.NewView(s, ports.Upload)
	documentView := document.NewView(s)
	chatView := chat.NewView(s, ports.Chat)

	app := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		uploadView:   uploadView,
		documentView: documentView,
		chatView:     chatView,
		statusBar:    status.NewBar(s, nil),
		currentView:  messages.ViewUpload,
	}

	// Resume with the persisted document if one survives from a
	// previous session.
	if record := ports.Record.Current(); record != nil {
		documentView.SetRecord(record)
		app.statusBar.SetDocument(record.Filename)
		app.currentView = messages.ViewDocument
	}

	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.uploadView.WithContext(ctx)
	a.chatView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("docchat"),
		a.uploadView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.uploadView.SetDimensions(msg.Width, msg.Height)
		a.documentView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewUpload:
			return a, a.uploadView.Init()
		case messages.ViewDocument:
			a.documentView.SetRecord(a.ports.Record.Current())
			return a, nil
		case messages.ViewChat:
			a.loadHistory()
			return a, a.chatView.Init()
		}
		return a, nil

	case messages.UploadFinished:
		a.uploadView, cmd = a.uploadView.Update(msg)
		if msg.Err == nil && msg.Record != nil {
			// A new document starts a fresh conversation.
			a.ports.Chat.Reset()
			a.chatView.Reset()
			a.documentView.SetRecord(msg.Record)
			a.statusBar.SetDocument(msg.Record.Filename)
			a.currentView = messages.ViewDocument
		}
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a.forward(msg)
}

// loadHistory replays stored exchanges for the active document into
// the chat view. History is optional and its failures stay out of the
// conversation.
func (a *App) loadHistory() {
	if a.ports.History == nil {
		return
	}
	record := a.ports.Record.Current()
	if record == nil {
		return
	}
	exchanges, err := a.ports.History.List(a.ctx, record.PK)
	if err != nil {
		logger.Warn("Loading chat history: %v", err)
		return
	}
	a.chatView.SetHistory(exchanges)
}

// forward routes a message to the active view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewDocument:
		a.documentView, cmd = a.documentView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	a.syncStatus()

	var body string
	switch a.currentView {
	case messages.ViewUpload:
		body = a.uploadView.View()
	case messages.ViewDocument:
		body = a.documentView.View()
	case messages.ViewChat:
		body = a.chatView.View()
	default:
		body = a.uploadView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// syncStatus derives the status bar state from the views.
func (a *App) syncStatus() {
	switch {
	case a.uploadView.Uploading():
		a.statusBar.SetState(status.StateUploading)
	case a.ports.Chat.Loading():
		a.statusBar.SetState(status.StateThinking)
	case a.err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(a.err.Error())
	default:
		a.statusBar.SetState(status.StateReady)
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.uploadView.SetDimensions(width, height)
	a.documentView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
