package lobby

import (
	"errors"
	"sync"
)

var (
	ErrStarted     = errors.New("game already started")
	ErrFull        = errors.New("lobby is full")
	ErrNotEnough   = errors.New("not enough players")
	ErrNotReady    = errors.New("not all players ready")
	ErrUnknownSeat = errors.New("player has no seat")
)

// PlayerInfo holds lobby-level player information.
type PlayerInfo struct {
	ID    string
	Name  string
	Ready bool
	Seat  int
}

// Lobby collects players until the game starts. Seats follow join order.
type Lobby struct {
	mu         sync.Mutex
	ID         string
	Game       string // registry key of the game being set up
	Players    []*PlayerInfo
	MaxPlayers int
	MinPlayers int
	Started    bool
}

// NewLobby creates a new lobby.
func NewLobby(id string) *Lobby {
	return &Lobby{
		ID:         id,
		MaxPlayers: 8,
		MinPlayers: 2,
	}
}

// Join adds a player to the lobby. Joining again renames the player.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name // allow reconnect with new name
			return nil
		}
	}
	if l.Started {
		return ErrStarted
	}
	if len(l.Players) >= l.MaxPlayers {
		return ErrFull
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name})
	l.reseat()
	return nil
}

// Leave removes a player before the game starts.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return
	}
	for i, p := range l.Players {
		if p.ID == id {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			l.reseat()
			return
		}
	}
}

func (l *Lobby) reseat() {
	for i, p := range l.Players {
		p.Seat = i
	}
}

// SetReady toggles a player's ready state.
func (l *Lobby) SetReady(id string, ready bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Ready = ready
			return
		}
	}
}

// CanStart returns true if enough players are ready.
func (l *Lobby) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.checkStart() == nil
}

func (l *Lobby) checkStart() error {
	if l.Started {
		return ErrStarted
	}
	if len(l.Players) < l.MinPlayers {
		return ErrNotEnough
	}
	for _, p := range l.Players {
		if !p.Ready {
			return ErrNotReady
		}
	}
	return nil
}

// Start marks the lobby as started and returns the seats in play order.
func (l *Lobby) Start() ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkStart(); err != nil {
		return nil, err
	}
	l.Started = true
	seats := make([]int, len(l.Players))
	for i, p := range l.Players {
		seats[i] = p.Seat
	}
	return seats, nil
}

// Reopen undoes Start when the game could not begin.
func (l *Lobby) Reopen() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Started = false
}

// SeatOf returns the seat of a player.
func (l *Lobby) SeatOf(id string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			return p.Seat, nil
		}
	}
	return 0, ErrUnknownSeat
}

// IsStarted reports whether Start succeeded.
func (l *Lobby) IsStarted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Started
}

// GetPlayers returns a copy of the player list.
func (l *Lobby) GetPlayers() []PlayerInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlayerInfo, len(l.Players))
	for i, p := range l.Players {
		out[i] = *p
	}
	return out
}
