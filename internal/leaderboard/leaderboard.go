// internal/leaderboard/leaderboard.go
package leaderboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-wave-defense/internal/config"
)

// ErrInvalidLimit возвращается для limit <= 0.
var ErrInvalidLimit = errors.New("leaderboard: limit must be positive")

// Entry — одна запись таблицы рекордов.
type Entry struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store persists finished runs and answers top-N queries.
// Top returns entries by score descending; equal scores keep insertion order.
type Store interface {
	Add(ctx context.Context, playerName string, score int) (Entry, error)
	Top(ctx context.Context, limit int) ([]Entry, error)
}

// NormalizeName trims the name; an empty name becomes config.DefaultPlayerName.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return config.DefaultPlayerName
	}
	return name
}
