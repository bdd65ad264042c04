package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fishrun/internal/core"
	"github.com/vovakirdan/fishrun/internal/registry"
	"github.com/vovakirdan/fishrun/internal/storage"
)

const fakeGameID = "tui_fake"

func init() {
	registry.Register(fakeGameID, func() registry.Game { return &fakeGame{} })
}

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets     int
	lastSeed   int64
	frames     []core.InputFrame
	state      core.GameState
	difficulty string
}

func (g *fakeGame) ID() string    { return fakeGameID }
func (g *fakeGame) Title() string { return "Fake Run" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastSeed = cfg.Seed
	g.state = core.GameState{Lives: 3}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Summary() core.RunSummary {
	return core.RunSummary{
		GameID:   fakeGameID,
		Seed:     g.lastSeed,
		Score:    g.state.Score,
		Distance: 120,
		Elapsed:  4.5,
	}
}

func (g *fakeGame) SetDifficulty(preset string) { g.difficulty = preset }

func (g *fakeGame) lastFrame(t *testing.T) core.InputFrame {
	t.Helper()
	if len(g.frames) == 0 {
		t.Fatal("game was never stepped")
	}
	return g.frames[len(g.frames)-1]
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}
