package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fishrun/internal/config"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return mm
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	found := false
	for _, item := range m.items {
		if item.GameID == fakeGameID {
			found = true
		}
	}
	if !found {
		t.Errorf("menu items %+v should include %s", m.items, fakeGameID)
	}
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	if m.Difficulty() != "" {
		t.Fatalf("initial difficulty = %q, expected the config default", m.Difficulty())
	}

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("after right = %q, expected easy", m.Difficulty())
	}

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("left should wrap around, got %q", m.Difficulty())
	}
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		verify func(t *testing.T, r MenuResult)
	}{
		{
			name: "select",
			keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}},
			verify: func(t *testing.T, r MenuResult) {
				if r.GameID == "" || r.Quit {
					t.Errorf("expected a selection, got %+v", r)
				}
				if r.Difficulty != config.DifficultyEasy {
					t.Errorf("Difficulty = %q, expected easy", r.Difficulty)
				}
			},
		},
		{
			name: "scoreboard",
			keys: []tea.KeyMsg{{Type: tea.KeyTab}},
			verify: func(t *testing.T, r MenuResult) {
				if !r.WantsScoreboard {
					t.Errorf("expected scoreboard, got %+v", r)
				}
			},
		},
		{
			name: "quit",
			keys: []tea.KeyMsg{runeKey("q")},
			verify: func(t *testing.T, r MenuResult) {
				if !r.Quit {
					t.Errorf("expected quit, got %+v", r)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, testConfig())
			for _, k := range tc.keys {
				m = updateMenu(t, m, k)
			}
			tc.verify(t, m.result())
		})
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText() = %q, expected unchanged", got)
	}
}
