package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wurdle/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"lower letter", runes("a"), core.ActionType},
		{"upper letter", runes("Q"), core.ActionType},
		{"digit", runes("7"), core.ActionType},
		{"paste with punctuation", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cr-ane"), Paste: true}, core.ActionType},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSubmit},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionDelete},
		{"ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, core.ActionNewGame},
		{"help", runes("?"), core.ActionHelp},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runes("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runes("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 7 {
		t.Errorf("FullHelp() has %d bindings, expected 7", n)
	}
}
