package store

import (
	"context"
	"sync"

	"github.com/hireloop/intervu-backend/internal/model"
)

// MemoryStore is the default in-process store. Sessions and candidates are
// copied on the way in and out so callers never alias internal state.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string]*model.Session
	candidates []model.Candidate
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*model.Session)}
}

func (m *MemoryStore) GetSession(_ context.Context, id string) (*model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (m *MemoryStore) PutSession(_ context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *MemoryStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) AppendCandidate(_ context.Context, c *model.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates = append(m.candidates, *c)
	return nil
}

func (m *MemoryStore) ListCandidates(_ context.Context) ([]model.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Candidate, len(m.candidates))
	copy(out, m.candidates)
	return out, nil
}

func (m *MemoryStore) GetCandidate(_ context.Context, id string) (*model.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.candidates {
		if m.candidates[i].ID == id {
			c := m.candidates[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}
