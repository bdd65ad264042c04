package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/fishrun/internal/core"
)

// RunEntry is one finished run with its seed, so it can be replayed.
type RunEntry struct {
	ID          int64
	GameID      string
	Player      string
	Seed        int64
	Score       int
	Distance    float64
	ElapsedSecs float64
	LivesLeft   int
	Respawns    int
	CreatedAt   time.Time
}

// SaveRun records a run summary. Returns the new row id.
func (s *Store) SaveRun(player string, run core.RunSummary) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (game_id, player, seed, score, distance, elapsed_secs, lives_left, respawns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.GameID,
		playerOrLocal(player),
		run.Seed,
		run.Score,
		run.Distance,
		run.Elapsed,
		run.LivesLeft,
		run.Respawns,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return insertedID(res)
}

// RecentRuns returns the newest runs first. An empty gameID matches all games.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, seed, score, distance, elapsed_secs, lives_left, respawns, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunEntry
	for rows.Next() {
		var r RunEntry
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Player,
			&r.Seed,
			&r.Score,
			&r.Distance,
			&r.ElapsedSecs,
			&r.LivesLeft,
			&r.Respawns,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
