package session

import (
	"sync"

	"github.com/google/uuid"
)

// Session holds the per-browser state the storefront keeps between
// requests: the session id and, after login, the backend-issued token and
// user identity.
type Session struct {
	ID        string
	Token     string
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Role      string
}

// Registry tracks the live sessions in memory. Sessions are created on
// the first request from a browser and live until the process restarts;
// there is no eviction, so memory grows with the number of distinct
// browsers seen. Restarting drops all sessions; returning browsers get a
// fresh session id and start over.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewRegistry creates an empty session registry
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]Session),
	}
}

// New creates a session with a fresh id
func (r *Registry) New() Session {
	session := Session{ID: uuid.NewString()}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session
}

// Get returns a copy of the session with the given id
func (r *Registry) Get(id string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	return session, ok
}

// SetAuth binds a successful login to the session
func (r *Registry) SetAuth(id string, auth AuthInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return
	}
	session.Token = auth.Token
	session.UserID = auth.UserID
	session.Email = auth.Email
	session.FirstName = auth.FirstName
	session.LastName = auth.LastName
	session.Role = auth.Role
	r.sessions[id] = session
}

// ClearAuth removes the login state from the session, keeping the
// session (and its cart) alive.
func (r *Registry) ClearAuth(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return
	}
	r.sessions[id] = Session{ID: session.ID}
}

// AuthInfo is the identity a login binds to a session
type AuthInfo struct {
	Token     string
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Role      string
}
