// internal/stats/store.go
//
// SQLite persistence for player statistics and finished-game history.
// Tables (see assets/migrations):
//   - player_stats: one row per player, distribution stored as a JSON array.
//   - games:        one row per finished game, attempts stored as JSON.

package stats

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordle/internal/game"
)

// GameRecord is a finished game as stored in history.
type GameRecord struct {
	ID         string         `json:"id"`
	PlayerID   string         `json:"-"`
	Answer     string         `json:"answer"`
	Status     string         `json:"status"`
	Guesses    int            `json:"guesses"`
	History    []game.Attempt `json:"history"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
}

// RecordFromSession converts a finished session into a history row.
func RecordFromSession(playerID string, sess *game.Session, finishedAt time.Time) GameRecord {
	return GameRecord{
		ID:         sess.ID,
		PlayerID:   playerID,
		Answer:     sess.Answer,
		Status:     sess.Status.String(),
		Guesses:    len(sess.History),
		History:    sess.History,
		StartedAt:  sess.StartedAt,
		FinishedAt: finishedAt.UTC(),
	}
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store reads and writes stats rows.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Get returns the player's stats, or zero stats if none were saved yet.
func (s *Store) Get(ctx context.Context, playerID string) (Stats, error) {
	st, err := get(ctx, s.db, playerID)
	if err != nil {
		return Stats{}, fmt.Errorf("load stats: %w", err)
	}
	return st, nil
}

// Save upserts the player's stats.
func (s *Store) Save(ctx context.Context, playerID string, st Stats) error {
	if err := save(ctx, s.db, playerID, st); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// Finish records a finished session: stats are updated and the game is
// appended to history in one transaction. Sessions still in progress are
// rejected.
func (s *Store) Finish(ctx context.Context, playerID string, sess *game.Session) (Stats, error) {
	if !sess.Finished() {
		return Stats{}, errors.New("finish: game still in progress")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, err
	}
	defer func() { _ = tx.Rollback() }()

	st, err := get(ctx, tx, playerID)
	if err != nil {
		return Stats{}, fmt.Errorf("load stats: %w", err)
	}
	st.Record(sess)
	if err := save(ctx, tx, playerID, st); err != nil {
		return Stats{}, fmt.Errorf("save stats: %w", err)
	}
	if err := insertGame(ctx, tx, RecordFromSession(playerID, sess, time.Now())); err != nil {
		return Stats{}, fmt.Errorf("record game: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Stats{}, err
	}
	return st, nil
}

// RecordGame appends a finished game to history without touching stats.
func (s *Store) RecordGame(ctx context.Context, r GameRecord) error {
	if err := insertGame(ctx, s.db, r); err != nil {
		return fmt.Errorf("record game: %w", err)
	}
	return nil
}

// RecentGames lists the player's finished games, newest first.
// Default limit is 50 if not specified.
func (s *Store) RecentGames(ctx context.Context, playerID string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, player_id, answer, status, guesses, history, started_at, finished_at
        FROM games
        WHERE player_id=?
        ORDER BY finished_at DESC
        LIMIT ?`, playerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	out := make([]GameRecord, 0, limit)
	for rows.Next() {
		var r GameRecord
		var history, started, finished string
		if err := rows.Scan(&r.ID, &r.PlayerID, &r.Answer, &r.Status, &r.Guesses, &history, &started, &finished); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(history), &r.History); err != nil {
			return nil, fmt.Errorf("decode history %s: %w", r.ID, err)
		}
		r.StartedAt = parseTime(started)
		r.FinishedAt = parseTime(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

func get(ctx context.Context, q querier, playerID string) (Stats, error) {
	var st Stats
	var dist string
	err := q.QueryRowContext(ctx, `
        SELECT played, won, current_streak, max_streak, distribution, word_tracker
        FROM player_stats WHERE player_id=?`, playerID,
	).Scan(&st.Played, &st.Won, &st.CurrentStreak, &st.MaxStreak, &dist, &st.WordTracker)
	if errors.Is(err, sql.ErrNoRows) {
		return Stats{}, nil
	}
	if err != nil {
		return Stats{}, err
	}
	if err := json.Unmarshal([]byte(dist), &st.Distribution); err != nil {
		return Stats{}, fmt.Errorf("decode distribution: %w", err)
	}
	return st, nil
}

func save(ctx context.Context, q querier, playerID string, st Stats) error {
	dist, err := json.Marshal(st.Distribution)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, `
        INSERT INTO player_stats
            (player_id, played, won, current_streak, max_streak, distribution, word_tracker, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(player_id) DO UPDATE SET
            played=excluded.played,
            won=excluded.won,
            current_streak=excluded.current_streak,
            max_streak=excluded.max_streak,
            distribution=excluded.distribution,
            word_tracker=excluded.word_tracker,
            updated_at=excluded.updated_at`,
		playerID, st.Played, st.Won, st.CurrentStreak, st.MaxStreak, string(dist), st.WordTracker,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func insertGame(ctx context.Context, q querier, r GameRecord) error {
	history, err := json.Marshal(r.History)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, `
        INSERT OR IGNORE INTO games
            (id, player_id, answer, status, guesses, history, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.PlayerID, r.Answer, r.Status, r.Guesses, string(history),
		r.StartedAt.UTC().Format(timeLayout), r.FinishedAt.UTC().Format(timeLayout),
	)
	return err
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// parseTime parses stored timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
