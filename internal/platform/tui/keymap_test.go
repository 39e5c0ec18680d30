package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"j", runeKey('j'), core.ActionDown},
		{"l", runeKey('l'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help", runeKey('?'), core.ActionHelp},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	keys := config.Default().Keys
	keys.Restart = []string{"r"}
	km := NewKeyMap(keys)

	if got := km.Action(runeKey('r')); got != core.ActionRestart {
		t.Errorf("Action(r) = %v, expected restart", got)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); got != core.ActionNone {
		t.Errorf("Action(space) = %v, expected none once rebound", got)
	}
}

func TestHelpLabel(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{" "}, "space"},
		{[]string{"up", "w", "k"}, "↑/w/k"},
		{[]string{"q", "ctrl+c"}, "q/ctrl+c"},
	}

	for _, tc := range tests {
		if got := helpLabel(tc.keys); got != tc.want {
			t.Errorf("helpLabel(%q) = %q, expected %q", tc.keys, got, tc.want)
		}
	}
}
