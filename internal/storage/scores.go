package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one recorded score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

const selectScores = `SELECT id, game_id, player, score, created_at FROM scores WHERE game_id = ?`

// SaveScore records a score for the local player.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveScoreFor(gameID, LocalPlayer, score)
}

// SaveScoreFor records a score under player. Empty names map to LocalPlayer.
func (s *Store) SaveScoreFor(gameID, player string, score int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, score) VALUES (?, ?, ?)",
		gameID, playerOrLocal(player), score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return insertedID(res)
}

// TopScores returns up to limit scores for gameID, best first. Ties keep
// insertion order.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(selectScores+` ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// PlayerBest returns the best score player has for gameID, 0 if none.
func (s *Store) PlayerBest(gameID, player string) (int, error) {
	return s.maxScore("SELECT MAX(score) FROM scores WHERE game_id = ? AND player = ?", gameID, playerOrLocal(player))
}

// HighScore returns the best score for gameID, 0 if none.
func (s *Store) HighScore(gameID string) (int, error) {
	return s.maxScore("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID)
}

func (s *Store) maxScore(query string, args ...any) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearScores deletes every score and run recorded for gameID.
func (s *Store) ClearScores(gameID string) error {
	for _, table := range []string{"scores", "runs"} {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}

// GameStats aggregates the scores and runs of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time

	// From the runs table.
	RunsCount    int
	BestDistance float64
	LongestRun   float64 // seconds
	TotalPlayed  float64 // seconds
}

// GetGameStats aggregates scores and runs for gameID. A game with no
// records yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(distance), 0), COALESCE(MAX(elapsed_secs), 0), COALESCE(SUM(elapsed_secs), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunsCount, &stats.BestDistance, &stats.LongestRun, &stats.TotalPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	return stats, nil
}

func insertedID(res sql.Result) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}
