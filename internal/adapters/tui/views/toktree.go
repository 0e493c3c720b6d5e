package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tokdex/internal/adapters/tui/styles"
	"tokdex/internal/application/commands"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// TreeKeyMap defines key bindings for the classification tree view
type TreeKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Yank  key.Binding
	Close key.Binding
	Quit  key.Binding
}

var TreeKeys = TreeKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "copy code"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "t"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// TreeModel is the model for the classification tree view
type TreeModel struct {
	store ports.TokStore

	nodes      []*domain.TokNode
	cursor     int
	width      int
	height     int
	message    string
	messageErr bool
}

// NewTreeModel creates a new classification tree model
func NewTreeModel(store ports.TokStore) *TreeModel {
	return &TreeModel{store: store}
}

// Init initializes the tree view
func (m *TreeModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *TreeModel) loadTree() tea.Msg {
	cmd := commands.NewTokTreeCommand(m.store)
	roots, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return tokTreeLoadedMsg{nodes: domain.FlattenTree(roots)}
}

type tokTreeLoadedMsg struct {
	nodes []*domain.TokNode
}

// Update handles messages for the tree view
func (m *TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tokTreeLoadedMsg:
		m.nodes = msg.nodes
		m.cursor = 0
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		m.message = ""

		switch {
		case key.Matches(msg, TreeKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, TreeKeys.Close):
			return m, func() tea.Msg {
				return SwitchToBareMsg{}
			}

		case key.Matches(msg, TreeKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, TreeKeys.Down):
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, TreeKeys.Yank):
			if m.cursor >= 0 && m.cursor < len(m.nodes) {
				code := m.nodes[m.cursor].Code
				if err := clipboard.WriteAll(code); err != nil {
					m.message = err.Error()
					m.messageErr = true
				} else {
					m.message = fmt.Sprintf("Copied %s", code)
					m.messageErr = false
				}
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the tree view
func (m *TreeModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("ToK Tree"))
	b.WriteString("\n\n")

	if len(m.nodes) == 0 {
		b.WriteString(styles.MutedText.Render("No classification entries"))
		b.WriteString("\n")
	}

	for i, node := range m.nodes {
		indent := strings.Repeat("  ", node.Depth())
		text := fmt.Sprintf("%s%s %s", indent, node.Code, node.Label)
		if i == m.cursor {
			b.WriteString(styles.RowSelected.Render(text))
		} else {
			b.WriteString(indent)
			b.WriteString(styles.TreeCode.Render(node.Code))
			b.WriteString(" ")
			b.WriteString(styles.TreeLabel.Render(node.Label))
		}
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("j/k"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("y"),
		styles.HelpDesc.Render("copy code"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("back"),
	))

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions
func (m *TreeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
