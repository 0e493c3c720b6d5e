package views

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tokdex/internal/adapters/tui/styles"
	"tokdex/internal/application"
	"tokdex/internal/application/commands"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// BareKeyMap defines key bindings for the bare-file listing view
type BareKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prefix key.Binding
	Rename key.Binding
	Open   key.Binding
	Yank   key.Binding
	Reload key.Binding
	Tree   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BareKeys = BareKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Prefix: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "apply code"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Open: key.NewBinding(
		key.WithKeys("o", "enter"),
		key.WithHelp("o", "open"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Reload: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reload"),
	),
	Tree: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tree"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type inputMode int

const (
	inputNone inputMode = iota
	inputPrefix
	inputRename
)

// BareModel is the model for the bare-file listing view
type BareModel struct {
	session *application.Session
	scanner ports.LibraryScanner
	renamer ports.FileRenamer
	opener  ports.FileOpener
	folder  string

	files      []domain.BareFile
	cursor     int
	mode       inputMode
	input      textinput.Model
	width      int
	height     int
	message    string
	messageErr bool
}

// NewBareModel creates a new bare-file listing model
func NewBareModel(session *application.Session, scanner ports.LibraryScanner, renamer ports.FileRenamer, opener ports.FileOpener, folder string) *BareModel {
	input := textinput.New()
	input.CharLimit = 120

	return &BareModel{
		session: session,
		scanner: scanner,
		renamer: renamer,
		opener:  opener,
		folder:  folder,
		input:   input,
	}
}

// Init initializes the listing
func (m *BareModel) Init() tea.Cmd {
	return m.loadListing
}

func (m *BareModel) loadListing() tea.Msg {
	cmd := commands.NewListBareCommand(m.session, m.scanner, m.folder)
	index, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return bareLoadedMsg{files: index.Files()}
}

type bareLoadedMsg struct {
	files []domain.BareFile
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the listing
func (m *BareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bareLoadedMsg:
		m.files = msg.files
		if m.cursor >= len(m.files) {
			m.cursor = len(m.files) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case successMsg:
		m.message = msg.message
		m.messageErr = false
		return m, m.loadListing

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		m.message = "" // Clear message on key press

		switch {
		case key.Matches(msg, BareKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BareKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BareKeys.Down):
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BareKeys.Prefix):
			if m.selectedFile() != nil {
				m.mode = inputPrefix
				m.input.Placeholder = "ToK code (e.g. AB)"
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}
			return m, nil

		case key.Matches(msg, BareKeys.Rename):
			if f := m.selectedFile(); f != nil {
				m.mode = inputRename
				m.input.Placeholder = "New filename"
				m.input.SetValue(f.Name)
				m.input.Focus()
				return m, textinput.Blink
			}
			return m, nil

		case key.Matches(msg, BareKeys.Open):
			if f := m.selectedFile(); f != nil {
				return m, m.openFile(f.Name)
			}
			return m, nil

		case key.Matches(msg, BareKeys.Yank):
			if f := m.selectedFile(); f != nil {
				path := filepath.Join(m.folder, f.Name)
				if err := clipboard.WriteAll(path); err != nil {
					m.message = err.Error()
					m.messageErr = true
				} else {
					m.message = fmt.Sprintf("Copied %s", path)
					m.messageErr = false
				}
			}
			return m, nil

		case key.Matches(msg, BareKeys.Reload):
			return m, m.loadListing

		case key.Matches(msg, BareKeys.Tree):
			return m, func() tea.Msg {
				return SwitchToTreeMsg{}
			}

		case key.Matches(msg, BareKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BareModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = inputNone
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		if mode == inputPrefix {
			return m, m.applyPrefix(value)
		}
		return m, m.renameFile(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *BareModel) applyPrefix(code string) tea.Cmd {
	displayIndex := m.cursor + 1
	return func() tea.Msg {
		cmd := commands.NewApplyPrefixCommand(m.session, m.renamer, displayIndex, code)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BareModel) renameFile(newName string) tea.Cmd {
	displayIndex := m.cursor + 1
	return func() tea.Msg {
		cmd := commands.NewRenameCommand(m.session, m.renamer, displayIndex, newName)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BareModel) openFile(name string) tea.Cmd {
	path := filepath.Join(m.folder, name)
	return func() tea.Msg {
		if err := m.opener.OpenFile(path); err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("Opened %s", name)}
	}
}

func (m *BareModel) selectedFile() *domain.BareFile {
	if m.cursor >= 0 && m.cursor < len(m.files) {
		return &m.files[m.cursor]
	}
	return nil
}

// View renders the listing
func (m *BareModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Tokdex"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.folder))
	b.WriteString("\n\n")

	if len(m.files) == 0 {
		b.WriteString(styles.MutedText.Render("No unclassified PDFs in this folder"))
		b.WriteString("\n")
	}

	for i, f := range m.files {
		b.WriteString(m.renderRow(i, f, i == m.cursor))
		b.WriteString("\n")
	}

	if m.mode != inputNone {
		b.WriteString("\n")
		if m.mode == inputPrefix {
			b.WriteString(styles.InputLabel.Render("Apply code"))
		} else {
			b.WriteString(styles.InputLabel.Render("Rename"))
		}
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(m.input.View()))
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
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BareModel) renderRow(i int, f domain.BareFile, selected bool) string {
	text := fmt.Sprintf("%3d  %s  %s", i+1, f.Name, f.ModifiedAt.Format(domain.TimeFormat))
	if selected {
		return styles.RowSelected.Render(text)
	}
	return fmt.Sprintf("%s  %s  %s",
		styles.RowIndex.Render(fmt.Sprintf("%3d", i+1)),
		styles.RowFile.Render(f.Name),
		styles.RowTime.Render(f.ModifiedAt.Format(domain.TimeFormat)),
	)
}

func (m *BareModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"p", "apply code"},
		{"r", "rename"},
		{"o", "open"},
		{"y", "copy path"},
		{"t", "tree"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// SetSize updates the view dimensions
func (m *BareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload rebuilds the listing from disk
func (m *BareModel) Reload() tea.Cmd {
	return m.loadListing
}

// Messages for view switching
type SwitchToTreeMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBareMsg struct{}
