package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wurdle/internal/config"
	"github.com/vovakirdan/wurdle/internal/core"
	"github.com/vovakirdan/wurdle/internal/game"
	"github.com/vovakirdan/wurdle/internal/source"
	"github.com/vovakirdan/wurdle/internal/wordle"
	"github.com/vovakirdan/wurdle/internal/words"
)

func testTheme() *Theme {
	return NewTheme(lipgloss.NewRenderer(&strings.Builder{}), config.Default().Theme)
}

func newTestModel(t *testing.T, target string) Model {
	t.Helper()
	src, err := source.NewFixed(source.Params{Fixed: target})
	require.NoError(t, err)
	g, err := game.New(game.Options{
		Wordle: wordle.DefaultConfig(),
		Dict:   wordle.NewDictionary("CRANE", "SLATE", "PIANO"),
		Source: src,
	})
	require.NoError(t, err)
	return NewModel(g, testTheme(), core.DefaultConfig())
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeKeys(word string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(word))
	for _, r := range word {
		msgs = append(msgs, runes(string(r)))
	}
	return msgs
}

func TestModelTyping(t *testing.T) {
	m := newTestModel(t, "CRANE")

	m = send(m, typeKeys("slat")...)
	assert.Equal(t, "SLAT", m.game.Engine().InProgressText())
	assert.Equal(t, "SLAT", m.input.Value())

	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "SLA", m.game.Engine().InProgressText())
	assert.Equal(t, "SLA", m.input.Value())

	m = send(m, runes("1"))
	assert.Equal(t, "SLA", m.game.Engine().InProgressText(), "digits are ignored")
}

func TestModelPasteKeepsLetters(t *testing.T) {
	m := newTestModel(t, "CRANE")

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cr-ane"), Paste: true})
	assert.Equal(t, "CRANE", m.game.Engine().InProgressText())
	assert.Equal(t, "CRANE", m.input.Value())

	m = newTestModel(t, "CRANE")
	m = send(m, runes("s1 l"))
	assert.Equal(t, "SL", m.game.Engine().InProgressText(), "a partly invalid paste keeps its letters")
}

func TestModelSubmit(t *testing.T) {
	m := newTestModel(t, "CRANE")

	m = send(m, typeKeys("slate")...)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	e := m.game.Engine()
	assert.Equal(t, 1, e.Attempts())
	assert.Equal(t, "", e.InProgressText())
	assert.Equal(t, "", m.input.Value(), "input follows the engine after submit")

	m = send(m, typeKeys("crane")...)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, wordle.StatusWon, e.Status())

	m = send(m, typeKeys("piano")...)
	assert.Equal(t, "", e.InProgressText(), "typing after the game is over is ignored")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, wordle.StatusInProgress, m.game.Engine().Status())
	assert.Equal(t, 2, m.game.Played())
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t, "CRANE")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(Model).IsQuitting(), "esc quits a standalone game")
	assert.NotNil(t, cmd)

	m = newTestModel(t, "CRANE")
	m.embedded = true
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.IsQuitting())
	assert.Equal(t, "", m.View())
}

func TestModelHelpResizesBoard(t *testing.T) {
	m := newTestModel(t, "CRANE")
	h := m.screen.Height()

	m = send(m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Equal(t, h-(fullFooterHeight-footerHeight), m.screen.Height())

	m = send(m, runes("?"))
	assert.Equal(t, h, m.screen.Height())
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, "CRANE")
	m = send(m, typeKeys("cr")...)

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 40-footerHeight, m.screen.Height())
	assert.Equal(t, "CR", m.game.Engine().InProgressText(), "resize keeps the game")

	m = send(m, tea.WindowSizeMsg{Width: 18, Height: 6})
	assert.Contains(t, m.View(), "too small")
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, "CRANE")
	m = send(m, typeKeys("pia")...)

	view := m.View()
	assert.Contains(t, view, game.Title)
	assert.Contains(t, view, "Attempt 1/6")

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, core.DefaultConfig().ScreenH, "board plus one help line")
}

func TestModelTick(t *testing.T) {
	m := newTestModel(t, "CRANE")
	m = send(m, typeKeys("slate")...)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.game.Revealing())

	for range 100 {
		next, cmd := m.Update(TickMsg{})
		m = next.(Model)
		assert.NotNil(t, cmd, "tick loop keeps running")
	}
	assert.False(t, m.game.Revealing())
}

func TestMenuItems(t *testing.T) {
	ids := func(items []MenuItem) []string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.SourceID
		}
		return out
	}

	assert.Equal(t, []string{"daily", "random"}, ids(MenuItems(false)))
	assert.Equal(t, []string{"daily", "fixed", "random"}, ids(MenuItems(true)))
}

func TestMenuNavigation(t *testing.T) {
	items := MenuItems(false)
	var m tea.Model = NewMenuModel(items, core.DefaultConfig())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	menu := m.(MenuModel)
	require.NotNil(t, menu.Selected())
	assert.Equal(t, items[len(items)-1].SourceID, menu.Selected().SourceID)
	assert.NotNil(t, cmd)
	assert.Contains(t, menu.View(), "W U R D L E")
}

func testDeps() game.Deps {
	cfg := config.Default()
	lists, _ := words.NewLists([]string{"CRANE", "SLATE"}, nil, cfg.Game.WordLength)
	return game.Deps{Config: cfg, Lists: lists, Dict: lists.Dictionary()}
}

func TestSessionModelFlow(t *testing.T) {
	var buf strings.Builder
	logger := log.New(&buf)

	var m tea.Model = NewSessionModel(testDeps(), testTheme(), core.DefaultConfig(), logger)

	// Menu is sorted by ID, so the first entry is the daily source.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	require.True(t, s.inGame)
	require.NotNil(t, s.gameModel)
	assert.Equal(t, "daily", s.gameModel.game.SourceID())
	assert.Contains(t, buf.String(), "game started")

	target := s.gameModel.game.Engine().Target()
	for _, msg := range typeKeys(strings.ToLower(target)) {
		m, _ = m.Update(msg)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, buf.String(), "game finished")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = m.(SessionModel)
	assert.False(t, s.inGame)
	assert.Contains(t, s.View(), "Pick a word source")

	m, cmd := m.Update(runes("q"))
	assert.True(t, m.(SessionModel).quitting)
	assert.NotNil(t, cmd)
}
