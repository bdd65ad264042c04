package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/fishrun/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("fishrun", 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("fishrun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("HighScore() = %d after reopen, expected 7", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("fishrun", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScoreFor("fishrun_strict", "alice", 500); err != nil {
		t.Fatalf("SaveScoreFor() failed: %v", err)
	}

	scores, err := store.TopScores("fishrun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].Player != LocalPlayer {
			t.Errorf("scores[%d].Player = %q, expected %q", i, scores[i].Player, LocalPlayer)
		}
	}

	strict, err := store.TopScores("fishrun_strict", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(strict) != 1 || strict[0].Player != "alice" || strict[0].Score != 500 {
		t.Errorf("strict scores = %+v", strict)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 20; i++ {
		store.SaveScore("fishrun", i*10)
	}

	scores, err := store.TopScores("fishrun", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 {
		t.Errorf("Expected top score 200, got %d", scores[0].Score)
	}
}

func TestStorePlayerBest(t *testing.T) {
	store := openTestStore(t)
	store.SaveScoreFor("fishrun", "alice", 12)
	store.SaveScoreFor("fishrun", "alice", 30)
	store.SaveScoreFor("fishrun", "bob", 99)
	store.SaveScore("fishrun", 4)

	tests := []struct {
		player string
		want   int
	}{
		{"alice", 30},
		{"bob", 99},
		{"", 4},
		{"carol", 0},
	}
	for _, tc := range tests {
		got, err := store.PlayerBest("fishrun", tc.player)
		if err != nil {
			t.Fatalf("PlayerBest(%q) failed: %v", tc.player, err)
		}
		if got != tc.want {
			t.Errorf("PlayerBest(%q) = %d, expected %d", tc.player, got, tc.want)
		}
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("fishrun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty table, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("fishrun", 10)
	store.SaveScore("fishrun", 30)
	store.SaveScore("fishrun_strict", 5)
	store.SaveRun("", core.RunSummary{GameID: "fishrun", Score: 10, Distance: 800, Elapsed: 12})
	store.SaveRun("", core.RunSummary{GameID: "fishrun", Score: 30, Distance: 2400, Elapsed: 40})

	stats, err := store.GetGameStats("fishrun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.RunsCount != 2 || stats.BestDistance != 2400 || stats.LongestRun != 40 || stats.TotalPlayed != 52 {
		t.Errorf("run stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunSummary{
		{GameID: "fishrun", Seed: 1, Score: 3, Distance: 1200.5, Elapsed: 20, LivesLeft: 0, Respawns: 4},
		{GameID: "fishrun_strict", Seed: 2, Score: 9, Distance: 3000, Elapsed: 61.5, LivesLeft: 1, Respawns: 11},
		{GameID: "fishrun", Seed: 3, Score: 5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("RecentRuns() returned %d, expected 3", len(all))
	}
	if all[0].Seed != 3 {
		t.Errorf("newest run seed = %d, expected 3", all[0].Seed)
	}

	strict, err := store.RecentRuns("fishrun_strict", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(strict) != 1 {
		t.Fatalf("RecentRuns(strict) returned %d, expected 1", len(strict))
	}
	r := strict[0]
	if r.Player != LocalPlayer || r.Score != 9 || r.Distance != 3000 || r.ElapsedSecs != 61.5 || r.LivesLeft != 1 || r.Respawns != 11 {
		t.Errorf("run = %+v", r)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("fishrun", 100)
	store.SaveScore("fishrun_strict", 200)
	store.SaveRun("bob", core.RunSummary{GameID: "fishrun", Score: 100})

	if err := store.ClearScores("fishrun"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("fishrun", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("fishrun", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	other, _ := store.TopScores("fishrun_strict", 10)
	if len(other) != 1 {
		t.Errorf("Other game's scores should survive, got %d", len(other))
	}
}
