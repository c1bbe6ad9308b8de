package out

import (
	"context"
	"sync"

	"psynara/internal/modules/session/domain"
	sessionout "psynara/internal/modules/session/port/out"
	apperrors "psynara/internal/platform/errors"
)

// MemoryActiveSessionStore keeps the one live session for this process.
// Engines are live values and are never written to disk.
type MemoryActiveSessionStore struct {
	mu     sync.Mutex
	active *domain.ActiveSession
}

func NewMemoryActiveSessionStore() sessionout.ActiveSessionStore {
	return &MemoryActiveSessionStore{}
}

func (s *MemoryActiveSessionStore) SaveActive(_ context.Context, session domain.ActiveSession) error {
	if session.ID == "" || session.Engine == nil {
		return apperrors.Invalid("active session requires an id and an engine")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = &session
	return nil
}

func (s *MemoryActiveSessionStore) LoadActive(_ context.Context) (domain.ActiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return domain.ActiveSession{}, apperrors.ErrNoActiveSession
	}
	return *s.active, nil
}

func (s *MemoryActiveSessionStore) ClearActive(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	return nil
}
