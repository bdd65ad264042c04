package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fishrun/internal/core"
)

// KeyMapper translates Bubble Tea key messages into simulation keys and
// platform actions. It centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the simulation key and the platform action for msg.
// Either may be the None value; a few keys produce neither.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, core.Action) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.KeyNone, core.ActionQuit
	case "up", "w", " ":
		return core.KeyUp, core.ActionNone
	case "left", "a":
		return core.KeyLeft, core.ActionNone
	case "right", "d":
		return core.KeyRight, core.ActionNone
	case "enter":
		return core.KeyNone, core.ActionConfirm
	case "b":
		return core.KeyNone, core.ActionBack
	case "p", "esc":
		return core.KeyNone, core.ActionPause
	case "r":
		return core.KeyNone, core.ActionRestart
	}
	return core.KeyNone, core.ActionNone
}

// IsBack reports whether msg leaves a paused or finished game.
func (km *KeyMapper) IsBack(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "b", "esc":
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
