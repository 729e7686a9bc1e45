package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{runeKey('w'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('s'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{runeKey('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestIsMove(t *testing.T) {
	for _, a := range core.MoveActions {
		if !IsMove(a) {
			t.Errorf("IsMove(%v) = false", a)
		}
	}
	for _, a := range []core.Action{core.ActionFire, core.ActionQuit, core.ActionNone} {
		if IsMove(a) {
			t.Errorf("IsMove(%v) = true", a)
		}
	}
}
