package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"go-storefront/storage"
)

// Manager hands out one cart store per browser session. It is the single
// owner of all live stores; the UI layer receives stores through it
// instead of reaching for a process-wide singleton.
//
// Stores are kept for the process lifetime; there is no eviction. A
// restart sheds the in-memory map and reloads carts lazily from storage.
// TODO: evict stores idle past the session cookie lifetime once cookies
// carry an expiry.
type Manager struct {
	mu       sync.Mutex
	backend  storage.Store
	notifier Notifier
	log      logrus.FieldLogger
	stores   map[string]*Store
}

// NewManager creates a manager backed by the given storage and notifier
func NewManager(backend storage.Store, notifier Notifier, log logrus.FieldLogger) *Manager {
	return &Manager{
		backend:  backend,
		notifier: notifier,
		log:      log,
		stores:   make(map[string]*Store),
	}
}

// Store returns the cart store for sessionID, creating and loading it on
// first use. Each session persists under its own storage key, so two
// sessions never share cart state.
func (m *Manager) Store(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store
	}

	store := NewStore(ctx, "cart:"+sessionID, m.backend, m.notifier, m.log)
	m.stores[sessionID] = store
	return store
}
