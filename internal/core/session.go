package core

// session.go keeps each browser's cleaning state. A session holds the
// raw table as loaded, the baseline produced by the standard cleaning
// pass, and the working table the user mutates through the cleaning
// tools. The manager owns all of them; nothing else in the process
// holds mutable table state.

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one user's dataset state. Access goes through the
// manager's lock; handlers receive table values, never shared slices.
type Session struct {
	ID       string
	Raw      Table
	Baseline Table
	Working  Table
	History  *HistoryLog

	lastSeen time.Time
}

// SessionManager mints, stores and expires sessions.
type SessionManager struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager returns a manager with the given idle TTL.
func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create mints a session seeded with a raw table. The standard
// cleaning pass runs here so both baseline and working start from the
// same cleaned snapshot, with the steps on the session's history log.
func (m *SessionManager) Create(raw Table, pipeline PipelineConfig) *Session {
	log := NewHistoryLog()
	cleaned := CleanDataset(raw, pipeline, log)

	s := &Session{
		ID:       uuid.NewString(),
		Raw:      raw,
		Baseline: cleaned,
		Working:  cleaned,
		History:  log,
		lastSeen: m.now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session for an ID and refreshes its idle timer.
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = m.now()
	return s, true
}

// Working returns a session's current working table.
func (m *SessionManager) Working(id string) (Table, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Table{}, false
	}
	s.lastSeen = m.now()
	return s.Working, true
}

// Replace swaps in a new working table for a session. Table values are
// copy-on-write, so the old value stays valid for any reader holding
// it.
func (m *SessionManager) Replace(id string, working Table) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return false
	}
	s.Working = working
	s.lastSeen = m.now()
	return true
}

// Reset restores a session's working table to the post-pipeline
// baseline and logs the reset.
func (m *SessionManager) Reset(id string) (Table, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return Table{}, false
	}
	s.Working = s.Baseline
	s.lastSeen = m.now()
	baseline := s.Baseline
	log := s.History
	m.mu.Unlock()

	log.Append("Reset", "Restored working data to cleaned baseline", baseline.NumRows())
	return baseline, true
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle longer than the TTL and returns how many
// were removed.
func (m *SessionManager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-m.ttl)
	evicted := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// StartSweeper runs Sweep on an interval until the context is
// cancelled. Intended to run as a background goroutine for the life of
// the server.
func (m *SessionManager) StartSweeper(ctx context.Context, interval time.Duration) {
	slog.Info("session sweeper started", "ttl", m.ttl, "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return
		case <-ticker.C:
			if evicted := m.Sweep(); evicted > 0 {
				slog.Info("evicted idle sessions", "count", evicted, "remaining", m.Count())
			}
		}
	}
}
