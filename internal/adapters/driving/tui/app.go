package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/messages"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/styles"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/views/browse"
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
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

	// browseView is the combined query, filter and results view.
	browseView *browse.View

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

// NewApp creates a new TUI application with the given ports, starting in
// the given layout mode.
func NewApp(ports *Ports, mode domain.ViewMode) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	browseView := browse.NewView(s, ports.Catalogue, ports.Query, mode)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		browseView:  browseView,
		currentView: messages.ViewBrowse,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("shoal - Catalogue Browser"),
		a.browseView.Init(),
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
		a.browseView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewBrowse:
			// q and ? act globally unless the query input is consuming
			// printable keys.
			if !a.browseView.QueryFocused() {
				switch msg.String() {
				case "q":
					return a, tea.Quit
				case "?":
					a.currentView = messages.ViewHelp
					return a, nil
				}
			}
			a.browseView, cmd = a.browseView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Any of esc, q or ? leaves help
			switch msg.String() {
			case "esc", "q", "?":
				a.currentView = messages.ViewBrowse
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.CatalogueReloaded:
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the browse view.
	a.browseView, cmd = a.browseView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewBrowse:
		return a.browseView.View()
	default:
		return a.browseView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Focus:
  tab         Cycle query, category, period, results
  esc         Clear the query and filters

Query:
  (type)      Filter records as you type

Filters:
  ←/h, →/l    Cycle the focused filter value

Results:
  j/k, ↑/↓    Move through records
  v           Toggle cards/table layout

General:
  ?           Toggle this help
  q, ctrl+c   Quit

[esc] back to browsing`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Browse returns the browse view, for tests.
func (a *App) Browse() *browse.View {
	return a.browseView
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
	a.browseView.SetDimensions(width, height)
}
