package sim

import (
	"testing"

	"github.com/vovakirdan/fishrun/internal/assets"
	"github.com/vovakirdan/fishrun/internal/config"
	"github.com/vovakirdan/fishrun/internal/core"
)

func testAtlas(t *testing.T) *assets.Atlas {
	t.Helper()
	atlas, err := assets.DefaultAtlas()
	if err != nil {
		t.Fatalf("DefaultAtlas() error: %v", err)
	}
	return atlas
}

// newTestWorld builds a world from the default config, optionally adjusted.
func newTestWorld(t *testing.T, seed int64, mutate func(*config.FishRunConfig)) *World {
	t.Helper()
	cfg := config.DefaultFishRunConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := New(cfg, seed, testAtlas(t))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return w
}

func keys(ks ...core.Key) core.InputFrame {
	f := core.NewInputFrame()
	for _, k := range ks {
		f.Press(k)
	}
	return f
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func assertNoPlatformOverlap(t *testing.T, platforms []Platform) {
	t.Helper()
	for i := range platforms {
		for j := i + 1; j < len(platforms); j++ {
			if core.OverlapsHorizontally(platforms[i].Box, platforms[j].Box) {
				t.Fatalf("platforms %d %+v and %d %+v overlap horizontally",
					i, platforms[i].Box, j, platforms[j].Box)
			}
		}
	}
}
