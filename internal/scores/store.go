// internal/scores/store.go
//
// SQLite-backed persistence for high scores and game history.
// A player is either a registered user (users.id) or a guest identified
// by the anonymous cookie; both key the same high_scores table.

package scores

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// High returns the stored highest score for player, 0 if none.
func (s *Store) High(ctx context.Context, playerID string) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx,
		`SELECT score FROM high_scores WHERE player_id=?`, playerID,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return score, err
}

// RecordHigh stores score if it beats the player's current best.
// Returns the best score after the update.
func (s *Store) RecordHigh(ctx context.Context, playerID string, score int) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, `
        INSERT INTO high_scores (player_id, score, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(player_id) DO UPDATE SET
            score = excluded.score,
            updated_at = excluded.updated_at
        WHERE excluded.score > high_scores.score`,
		playerID, score, now,
	); err != nil {
		return 0, err
	}
	return s.High(ctx, playerID)
}

// Merge folds the guest's best into the user's (after signup/login).
func (s *Store) Merge(ctx context.Context, fromID, toID string) error {
	best, err := s.High(ctx, fromID)
	if err != nil || best == 0 {
		return err
	}
	_, err = s.RecordHigh(ctx, toID, best)
	return err
}

// GameRow is a persisted game history entry.
type GameRow struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Score      int    `json:"score"`
	Placements int    `json:"placements"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// Owner identifies who a game row belongs to. Exactly one field is set.
type Owner struct {
	UserID      string
	AnonymousID string
}

func (o Owner) PlayerID() string {
	if o.UserID != "" {
		return o.UserID
	}
	return o.AnonymousID
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// StartGame inserts the history row for a new game.
func (s *Store) StartGame(ctx context.Context, id string, seed uint64, o Owner) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO games (id, user_id, anonymous_id, seed, started_at, status)
        VALUES (?, ?, ?, ?, ?, 'playing')`,
		id, nullable(o.UserID), nullable(o.AnonymousID), int64(seed),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// UpdateGame records progress; finished stamps finished_at and the final status.
func (s *Store) UpdateGame(ctx context.Context, id string, score, placements int, finished bool) error {
	if !finished {
		_, err := s.db.ExecContext(ctx,
			`UPDATE games SET score=?, placements=? WHERE id=?`, score, placements, id)
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE games SET score=?, placements=?, status='over', finished_at=? WHERE id=?`,
		score, placements, time.Now().UTC().Format(time.RFC3339), id)
	return err
}

// RecentGames lists the newest games of a user.
func (s *Store) RecentGames(ctx context.Context, userID string, limit int) ([]GameRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, status, score, placements, started_at, COALESCE(finished_at, '')
        FROM games WHERE user_id=?
        ORDER BY started_at DESC, rowid DESC
        LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GameRow{}
	for rows.Next() {
		var g GameRow
		if err := rows.Scan(&g.ID, &g.Status, &g.Score, &g.Placements, &g.StartedAt, &g.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// ClaimGames moves a guest's history to a user account.
func (s *Store) ClaimGames(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE games SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	return err
}

// LBRow is a leaderboard entry.
type LBRow struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Leaderboard returns the best registered players, highest first.
// Ties go to whoever reached the score first.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT u.username, h.score
        FROM high_scores h JOIN users u ON u.id = h.player_id
        WHERE h.score > 0
        ORDER BY h.score DESC, h.updated_at ASC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.Username, &r.Score); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
