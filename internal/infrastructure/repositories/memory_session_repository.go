package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/pearmediallc/symphony-ai/domain"
)

// MemorySessionRepository keeps sessions in a process-local map. It is the
// backing used when no Redis address is configured, and in tests.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemorySessionRepository creates an in-memory session repository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]domain.Session)}
}

// Create implements domain.SessionRepository.
func (r *MemorySessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if session.ExpiresAt.Before(time.Now()) {
		return domain.ErrSessionExpired
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

// FindByID implements domain.SessionRepository.
func (r *MemorySessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if session.ExpiresAt.Before(time.Now()) {
		r.mu.Lock()
		delete(r.sessions, sessionID)
		r.mu.Unlock()
		return nil, domain.ErrSessionExpired
	}
	return &session, nil
}

// Delete implements domain.SessionRepository.
func (r *MemorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// Refresh implements domain.SessionRepository.
func (r *MemorySessionRepository) Refresh(ctx context.Context, sessionID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if session.ExpiresAt.Before(time.Now()) {
		delete(r.sessions, sessionID)
		return domain.ErrSessionExpired
	}
	session.ExpiresAt = time.Now().Add(ttl)
	r.sessions[sessionID] = session
	return nil
}
