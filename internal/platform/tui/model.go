package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wurdle/internal/core"
	"github.com/vovakirdan/wurdle/internal/game"
)

// Rows below the board used by the short and full help.
const (
	footerHeight     = 1
	fullFooterHeight = 3
)

// Model is the Bubble Tea model for one wurdle session.
//
// Typed characters go through a hidden textinput. After every keystroke its
// full value is handed to the game, and the field is reset to the
// normalized text the engine kept, so the field never drifts from the board.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	theme      *Theme
	keys       KeyMap
	help       help.Model
	input      textinput.Model
	config     core.RuntimeConfig
	embedded   bool // running inside a session; esc returns to the menu
	quitting   bool
	backToMenu bool
	notice     string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, theme *Theme, cfg core.RuntimeConfig) Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0
	input.Focus()

	m := Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		theme:  theme,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  input,
		config: cfg,
	}
	m.layout()
	return m
}

// Init starts the animation tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.game.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Save) {
		m.saveResult()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case core.ActionSubmit, core.ActionNewGame:
		m.notice = ""
		m.game.HandleInput(core.InputEvent{Action: m.keys.MapKey(msg)})
		m.syncInput()
		return m, nil

	case core.ActionType, core.ActionDelete:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.game.SetText(m.input.Value())
		m.syncInput()
		return m, cmd
	}

	return m, nil
}

// syncInput resets the hidden field to the engine's normalized text.
func (m *Model) syncInput() {
	m.input.SetValue(m.game.Engine().InProgressText())
	m.input.CursorEnd()
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout()
	return m, nil
}

// layout sizes the board area to the window minus the footer.
func (m *Model) layout() {
	footer := footerHeight
	if m.help.ShowAll {
		footer = fullFooterHeight
	}
	h := max(m.config.ScreenH-footer, 1)
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
	m.help.Width = m.config.ScreenW
}

// saveResult writes the share text of a finished game (or the current board
// while playing) to ~/.wurdle/results.
func (m *Model) saveResult() {
	m.game.Render(m.screen)
	content := m.game.ShareText()
	if content == "" {
		content = m.screen.String()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		m.notice = "cannot save: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".wurdle", "results")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.notice = "cannot save: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.SourceID(), timestamp))
	if err := os.WriteFile(path, []byte(content+"\n"), 0o600); err != nil {
		m.notice = "cannot save: " + err.Error()
		return
	}
	m.notice = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer = m.notice
	}
	return RenderScreen(m.screen, m.theme) + "\n" + footer
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game session.
func Run(g *game.Game, theme *Theme, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, theme, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
