package session

import "sync"

type memoryStore struct {
	mu     sync.RWMutex
	drafts map[int64]RecipeDraft
}

// NewMemoryStore creates an in-process Store.
func NewMemoryStore() Store {
	return &memoryStore{
		drafts: make(map[int64]RecipeDraft),
	}
}

func (s *memoryStore) PutDraft(userID int64, draft RecipeDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = draft
}

func (s *memoryStore) Draft(userID int64) (RecipeDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[userID]
	return draft, ok
}

func (s *memoryStore) Discard(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}
