package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fishrun/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		key    core.Key
		action core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, core.ActionNone},
		{"w", runeKey("w"), core.KeyUp, core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.KeyUp, core.ActionNone},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, core.ActionNone},
		{"d", runeKey("d"), core.KeyRight, core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyNone, core.ActionConfirm},
		{"escape pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.KeyNone, core.ActionPause},
		{"p", runeKey("p"), core.KeyNone, core.ActionPause},
		{"r", runeKey("r"), core.KeyNone, core.ActionRestart},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, core.ActionQuit},
		{"q", runeKey("q"), core.KeyNone, core.ActionQuit},
		{"unbound", runeKey("z"), core.KeyNone, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, a := km.MapKey(tc.msg)
			if k != tc.key || a != tc.action {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", k, a, tc.key, tc.action)
			}
		})
	}
}

func TestIsBack(t *testing.T) {
	km := NewKeyMapper()
	if !km.IsBack(runeKey("b")) || !km.IsBack(tea.KeyMsg{Type: tea.KeyEscape}) {
		t.Error("b and esc should go back")
	}
	if km.IsBack(runeKey("r")) {
		t.Error("r should not go back")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("b"), MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
