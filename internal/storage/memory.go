package storage

import (
	"context"
	"sync"

	"eventboard/internal/model"
)

// MemoryStorage keeps the canonical collection in process memory for the
// lifetime of the process. Load cannot fail and Save cannot raise an I/O
// error; state resets on restart.
type MemoryStorage struct {
	mu     sync.Mutex
	events []model.Event
}

func NewMemoryStorage(initial []model.Event) *MemoryStorage {
	s := &MemoryStorage{}
	s.events = append(s.events, initial...)
	return s
}

func (s *MemoryStorage) Load(ctx context.Context) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *MemoryStorage) Save(ctx context.Context, events []model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make([]model.Event, len(events))
	copy(s.events, events)
	return nil
}
