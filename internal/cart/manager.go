package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns one Store per shopper session. Sessions are created lazily
// and dropped after sitting idle for the configured TTL; expired entries
// are purged opportunistically on access.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
	now      func() time.Time
}

type session struct {
	store    *Store
	lastSeen time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Get returns the cart for the given session id, creating a fresh session
// when the id is empty, unknown or expired. The returned id identifies the
// session the cart belongs to and may differ from the input.
func (m *Manager) Get(id string) (*Store, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.purgeLocked(now)

	if id != "" {
		if sess, ok := m.sessions[id]; ok {
			sess.lastSeen = now
			return sess.store, id
		}
	}

	id = uuid.NewString()
	sess := &session{store: NewStore(), lastSeen: now}
	m.sessions[id] = sess
	return sess.store, id
}

// Lookup returns the cart for an existing session without creating one.
func (m *Manager) Lookup(id string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.purgeLocked(m.now())
	sess, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = m.now()
	return sess.store, true
}

// Drop discards a session and its cart, e.g. after checkout completes.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) purgeLocked(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, sess := range m.sessions {
		if now.Sub(sess.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
