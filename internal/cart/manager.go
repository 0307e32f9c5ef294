package cart

import (
	"sync"

	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// Manager hands out one Store per cart session, so every request for the
// same cart shares the same single-writer state container.
type Manager struct {
	mu      sync.RWMutex
	stores  map[string]*Store
	gateway *Gateway
	logger  *zap.Logger
}

// NewManager creates a new cart store manager
func NewManager(gateway *Gateway, logger *zap.Logger) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		gateway: gateway,
		logger:  logger,
	}
}

// Get returns the store for the session, creating one if needed. A fully
// anonymous session (no cart ID, no session ID) gets an unregistered store;
// it becomes addressable once the backend assigns a cart ID and the caller
// promotes it.
func (m *Manager) Get(sess domain.Session) *Store {
	key := sess.Key()
	if key == "" {
		return NewStore(m.gateway, sess, m.logger)
	}

	m.mu.RLock()
	store, ok := m.stores[key]
	m.mu.RUnlock()
	if ok {
		return store
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if store, ok := m.stores[key]; ok {
		return store
	}
	store = NewStore(m.gateway, sess, m.logger)
	m.stores[key] = store
	return store
}

// Promote registers a store under its backend-assigned cart ID after an
// anonymous session's first mutation created the cart.
func (m *Manager) Promote(store *Store) {
	key := store.Session().Key()
	if key == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stores[key]; !ok {
		m.stores[key] = store
	}
}

// Drop discards the store for the session, if any.
func (m *Manager) Drop(sess domain.Session) {
	key := sess.Key()
	if key == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, key)
}
