package chat

import (
	"context"
	"sync"
)

// Store keeps the per-game chat transcript. Transcripts are keyed by the
// game's generated identity and survive game switches within a session.
type Store interface {
	Append(ctx context.Context, gameID string, msg Message) error
	History(ctx context.Context, gameID string) ([]Message, error)
	Clear(ctx context.Context, gameID string) error
}

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]Message
}

// NewMemoryStore returns a transcript store that lives for the process.
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]Message)}
}

func (s *memoryStore) Append(ctx context.Context, gameID string, msg Message) error {
	s.mu.Lock()
	s.data[gameID] = append(s.data[gameID], msg)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) History(ctx context.Context, gameID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Message(nil), s.data[gameID]...), nil
}

func (s *memoryStore) Clear(ctx context.Context, gameID string) error {
	s.mu.Lock()
	delete(s.data, gameID)
	s.mu.Unlock()
	return nil
}
