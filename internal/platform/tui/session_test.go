package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm
}

// selectFake moves the menu cursor onto the fake game and starts it.
func selectFake(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == fakeGameID {
			m.menu.cursor = i
		}
	}
	return updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(openTestStore(t), testConfig(), Options{Player: "bob"})

	m = selectFake(t, m)
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("selecting a game should start it")
	}
	if m.View() == "" {
		t.Error("game view should not be empty")
	}

	game := m.gameModel.game.(*fakeGame)
	game.state.GameOver = true
	m = updateSession(t, m, TickMsg{})
	m = updateSession(t, m, runeKey("b"))

	if m.screen != screenMenu || m.gameModel != nil {
		t.Error("back after game over should return to the menu")
	}
	if m.quitting {
		t.Error("returning to the menu should not quit the session")
	}
}

func TestSessionAppliesDifficulty(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), Options{})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = selectFake(t, m)

	game := m.gameModel.game.(*fakeGame)
	if game.difficulty != "normal" {
		t.Errorf("difficulty = %q, expected normal", game.difficulty)
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), Options{})

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu || m.quitting {
		t.Error("esc should return to the menu")
	}
}
