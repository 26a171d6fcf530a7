// internal/leaderboard/postgres.go
package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS leaderboard (
	id          TEXT PRIMARY KEY,
	player_name TEXT NOT NULL,
	score       INTEGER NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore хранит рекорды в таблице leaderboard.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore accepts an existing DB handle and makes sure the table exists.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create leaderboard table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// OpenPostgres builds the store from a connection string (e.g. DATABASE_URL).
func OpenPostgres(ctx context.Context, connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	store, err := NewPostgresStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) Add(ctx context.Context, playerName string, score int) (Entry, error) {
	entry := Entry{
		ID:         uuid.NewString(),
		PlayerName: NormalizeName(playerName),
		Score:      score,
		CreatedAt:  time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leaderboard (id, player_name, score, created_at)
		VALUES ($1, $2, $3, $4)
	`, entry.ID, entry.PlayerName, entry.Score, entry.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("insert score: %w", err)
	}
	return entry, nil
}

func (s *PostgresStore) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player_name, score, created_at
		FROM leaderboard
		ORDER BY score DESC, created_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.PlayerName, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying DB handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
