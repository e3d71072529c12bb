package archive

import (
	"context"
	"sort"
	"sync"
)

// memrepo is the in-memory archive used when no database is configured.
type memrepo struct {
	mu      sync.RWMutex
	records map[string]*Record
}

func NewMemoryRepository() Repository {
	return &memrepo{records: make(map[string]*Record)}
}

func (m *memrepo) SaveGame(ctx context.Context, rec *Record) error {
	if rec == nil {
		return ErrDuplicateGame
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[rec.ID]; exists {
		return ErrDuplicateGame
	}
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *memrepo) RecentGames(ctx context.Context, limit int) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*Record, 0, len(m.records))
	for _, rec := range m.records {
		cp := *rec
		items = append(items, &cp)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].ImportedAt.Equal(items[j].ImportedAt) {
			return items[i].ImportedAt.After(items[j].ImportedAt)
		}
		return items[i].ID < items[j].ID
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (m *memrepo) GetGame(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}
