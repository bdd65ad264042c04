package fishrun

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/fishrun/internal/core"
	"github.com/vovakirdan/fishrun/internal/registry"
)

func newTestGame(t *testing.T, strict bool) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	if strict {
		g = NewStrict()
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	if g.Err() != nil {
		t.Fatalf("Reset() error: %v", g.Err())
	}
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{ID, StrictID} {
		if !registry.Exists(id) {
			t.Errorf("%q is not registered", id)
		}
	}

	g, err := registry.Create(StrictID)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != StrictID || !strings.Contains(g.Title(), "strict") {
		t.Errorf("strict variant = %q / %q", g.ID(), g.Title())
	}
}

func TestStrictVariantUsesStrictLanding(t *testing.T) {
	g := newTestGame(t, true)
	if g.World().Mode().String() != "strict" {
		t.Errorf("Mode() = %v, expected strict", g.World().Mode())
	}
}

func TestResetReportsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "physics:\n  gravity: 9.0\nplatforms:\n  seeds:\n    - { x: 0, y: 0, size: huge, kind: plain }\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	defer SetConfigPath("")

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if g.Err() == nil || !strings.Contains(g.Err().Error(), "huge") {
		t.Fatalf("Err() = %v, expected the unknown size to be reported", g.Err())
	}
	if g.World() != nil {
		t.Error("a rejected config must not fall back to a default world")
	}
	if !g.State().GameOver {
		t.Error("a game without a world should report game over")
	}
	if res := g.Step(core.NewInputFrame()); len(res.Events) != 0 {
		t.Errorf("Step() without a world returned events %v", res.Events)
	}
}

func TestStepClampsDt(t *testing.T) {
	g := newTestGame(t, false)

	in := core.NewInputFrame()
	in.Dt = 5.0
	g.Step(in)

	if got := g.World().Stats().Elapsed; got != 0.1 {
		t.Errorf("elapsed = %v, expected clamp to 0.1", got)
	}
}

func TestStepWithoutDtUsesTickRate(t *testing.T) {
	g := newTestGame(t, false)
	g.Step(core.NewInputFrame())

	if got := g.World().Stats().Elapsed; got != 1.0/60 {
		t.Errorf("elapsed = %v, expected %v", got, 1.0/60)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, false)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.World().Player()
	run := core.NewInputFrame()
	run.Dt = 0.05
	run.Press(core.KeyRight)
	g.Step(run)
	if g.World().Player().Box != before.Box {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestResetIsDeterministic(t *testing.T) {
	play := func(g *Game) core.RunSummary {
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			in.Dt = 1.0 / 60
			in.Press(core.KeyRight)
			if i%50 < 10 {
				in.Press(core.KeyUp)
			}
			g.Step(in)
		}
		return g.Summary()
	}

	g := newTestGame(t, false)
	first := play(g)

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	second := play(g)

	if first != second {
		t.Errorf("same seed produced different runs:\n%+v\n%+v", first, second)
	}
	if first.Distance <= 0 || first.GameID != ID || first.Seed != 42 {
		t.Errorf("summary = %+v", first)
	}
}

func TestPresetAppliesLives(t *testing.T) {
	SetConfigPath("")
	SetDifficultyPreset("easy")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(core.DefaultConfig())
	if g.State().Lives != 5 {
		t.Errorf("easy lives = %d, expected 5", g.State().Lives)
	}
	if !g.World().Difficulty().IsEnabled() {
		t.Error("easy preset should enable difficulty progression")
	}
}

func TestRenderDrawsHUDAndEntities(t *testing.T) {
	g := newTestGame(t, false)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "♥♥♥") {
		t.Errorf("HUD should show three lives, got %q", screen.Row(0))
	}

	// Player starts at (-150, 120): columns 22-26, rows 6-7
	if screen.Get(26, 7) != '█' {
		t.Errorf("expected player glyph near (26, 7), screen:\n%s", screen.String())
	}
	// Platform 0 spans x [-200, -100] at y -190: columns 20-29, row 1 + 490*23/600 = 19
	if screen.Get(25, 19) != '▀' {
		t.Errorf("expected platform glyph near (25, 19), screen:\n%s", screen.String())
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newTestGame(t, false)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}
