package checkout

import (
	"sync"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// Manager keeps at most one in-progress checkout flow per cart session.
// Flows are ephemeral: discarded on navigation away, on restart, and after
// a successful payment handoff.
type Manager struct {
	mu    sync.RWMutex
	flows map[string]*Flow
}

// NewManager creates a new checkout flow manager
func NewManager() *Manager {
	return &Manager{flows: make(map[string]*Flow)}
}

// Start registers a fresh flow for the session, replacing any previous one.
func (m *Manager) Start(sess domain.Session, flow *Flow) {
	key := sess.Key()
	if key == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flows[key] = flow
}

// Get returns the session's in-progress flow, if any.
func (m *Manager) Get(sess domain.Session) (*Flow, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	flow, ok := m.flows[sess.Key()]
	return flow, ok
}

// Discard drops the session's flow.
func (m *Manager) Discard(sess domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, sess.Key())
}
