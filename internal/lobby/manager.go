package lobby

import (
	"sync"

	"github.com/google/uuid"
)

// Manager owns the open lobbies, keyed by uuid.
type Manager struct {
	mu      sync.Mutex
	lobbies map[string]*Lobby
}

func NewManager() *Manager {
	return &Manager{lobbies: make(map[string]*Lobby)}
}

// Create opens a lobby for the named game.
func (m *Manager) Create(game string) *Lobby {
	l := NewLobby(uuid.NewString())
	l.Game = game

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lobbies[l.ID] = l
	return l
}

// Get returns a lobby by ID, or nil.
func (m *Manager) Get(id string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbies[id]
}

// Remove forgets a lobby.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lobbies, id)
}

// Len returns the number of open lobbies.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lobbies)
}
