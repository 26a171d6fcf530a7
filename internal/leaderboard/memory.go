// internal/leaderboard/memory.go
package leaderboard

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore хранит рекорды в памяти процесса.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Add(ctx context.Context, playerName string, score int) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	entry := Entry{
		ID:         uuid.NewString(),
		PlayerName: NormalizeName(playerName),
		Score:      score,
		CreatedAt:  s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return entry, nil
}

func (s *MemoryStore) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	sorted := slices.Clone(s.entries)
	s.mu.RUnlock()

	// Стабильная сортировка: при равных очках раньше идёт более старая запись.
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
