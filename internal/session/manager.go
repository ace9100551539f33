package session

import (
	"sync"
	"time"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"
)

// Manager owns the in-progress drafts, one per user. Drafts exist only in
// memory; starting a new report replaces any existing draft for that user.
type Manager struct {
	mu     sync.RWMutex
	drafts map[int64]*domain.Draft
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{drafts: make(map[int64]*domain.Draft)}
}

// Start begins a fresh draft for the user, replacing any previous one.
func (m *Manager) Start(userID int64) *domain.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft := domain.NewDraft(userID)
	m.drafts[userID] = draft
	return draft
}

// Get returns the user's current draft, or nil if none is in progress.
func (m *Manager) Get(userID int64) *domain.Draft {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.drafts[userID]
}

// Touch refreshes the draft's idle timer after an accepted input.
func (m *Manager) Touch(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if draft, ok := m.drafts[userID]; ok {
		draft.UpdatedAt = time.Now()
	}
}

// Cancel discards the user's draft, if any.
func (m *Manager) Cancel(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, userID)
}

// EvictIdle drops drafts untouched for longer than maxAge and returns how
// many were removed.
func (m *Manager) EvictIdle(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	evicted := 0
	for userID, draft := range m.drafts {
		if draft.UpdatedAt.Before(cutoff) {
			delete(m.drafts, userID)
			evicted++
		}
	}
	return evicted
}

// Active returns the number of drafts currently in progress.
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.drafts)
}
