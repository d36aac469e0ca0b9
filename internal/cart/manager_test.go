package cart

import (
	"testing"
	"time"
)

func TestManagerCreatesAndReusesSessions(t *testing.T) {
	m := NewManager(time.Hour)

	store, id := m.Get("")
	if store == nil || id == "" {
		t.Fatalf("expected new session, got store=%v id=%q", store, id)
	}

	again, sameID := m.Get(id)
	if again != store || sameID != id {
		t.Fatalf("existing session not reused")
	}

	other, otherID := m.Get("unknown-session")
	if otherID == id || other == store {
		t.Fatalf("unknown id must start a fresh session")
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", m.Len())
	}
}

func TestManagerLookupDoesNotCreate(t *testing.T) {
	m := NewManager(time.Hour)
	if _, ok := m.Lookup("nope"); ok {
		t.Fatalf("lookup created a session")
	}
	_, id := m.Get("")
	if _, ok := m.Lookup(id); !ok {
		t.Fatalf("lookup missed a live session")
	}
}

func TestManagerExpiresIdleSessions(t *testing.T) {
	m := NewManager(time.Minute)
	current := time.Unix(1000, 0)
	m.now = func() time.Time { return current }

	_, id := m.Get("")

	current = current.Add(2 * time.Minute)
	if _, ok := m.Lookup(id); ok {
		t.Fatalf("idle session survived past the TTL")
	}

	// Access keeps a session alive.
	_, id = m.Get("")
	current = current.Add(30 * time.Second)
	m.Get(id)
	current = current.Add(45 * time.Second)
	if _, ok := m.Lookup(id); !ok {
		t.Fatalf("active session expired")
	}
}

func TestManagerDrop(t *testing.T) {
	m := NewManager(time.Hour)
	_, id := m.Get("")
	m.Drop(id)
	if _, ok := m.Lookup(id); ok {
		t.Fatalf("dropped session still resolvable")
	}
}
