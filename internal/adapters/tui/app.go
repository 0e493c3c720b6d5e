package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tokdex/internal/adapters/tui/views"
	"tokdex/internal/application"
	"tokdex/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBare ViewState = iota
	ViewTree
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state ViewState
	bare  *views.BareModel
	tree  *views.TreeModel
	help  *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over one working folder.
func NewApp(session *application.Session, scanner ports.LibraryScanner, renamer ports.FileRenamer, opener ports.FileOpener, tokStore ports.TokStore, folder string) *App {
	return &App{
		state: ViewBare,
		bare:  views.NewBareModel(session, scanner, renamer, opener, folder),
		tree:  views.NewTreeModel(tokStore),
		help:  views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.bare.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.bare.SetSize(msg.Width, msg.Height)
		a.tree.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToTreeMsg:
		a.state = ViewTree
		return a, a.tree.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBareMsg:
		a.state = ViewBare
		return a, a.bare.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBare:
		_, cmd = a.bare.Update(msg)
	case ViewTree:
		_, cmd = a.tree.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewTree:
		return a.tree.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.bare.View()
	}
}
