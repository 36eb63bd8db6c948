package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memEntry struct {
	userID    int64
	expiresAt time.Time
}

// MemStore keeps sessions in process memory. Expired entries are dropped
// lazily on Get; there is no background sweeper.
type MemStore struct {
	mu       sync.Mutex
	sessions map[string]memEntry
	ttl      time.Duration

	now func() time.Time
}

var _ Store = (*MemStore)(nil)

func NewMemStore(ttl time.Duration) *MemStore {
	return &MemStore{
		sessions: make(map[string]memEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemStore) Create(_ context.Context, userID int64) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memEntry{userID: userID, expiresAt: s.now().Add(s.ttl)}
	return token, nil
}

func (s *MemStore) Get(_ context.Context, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return 0, ErrNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.sessions, token)
		return 0, ErrNotFound
	}
	return e.userID, nil
}

func (s *MemStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
