// Package engine is the contract between the room host and a game's rules.
// A host owns transport, lobbies and timing; a Game owns everything else.
package engine

import (
	"encoding/json"
	"time"
)

// NoSeat is the seat of events not tied to a player and of public views.
const NoSeat = -1

// EventType identifies events emitted by a game.
type EventType string

// Event is emitted by a game after a state change. Events with
// Recipients are only delivered to those seats.
type Event struct {
	Type       EventType   `json:"type"`
	Seat       int         `json:"seat"`
	Data       interface{} `json:"data,omitempty"`
	Recipients []int       `json:"-"`
}

// Private reports whether the event is limited to Recipients.
func (e Event) Private() bool {
	return e.Recipients != nil
}

// VisibleTo reports whether seat may receive the event.
func (e Event) VisibleTo(seat int) bool {
	if !e.Private() {
		return true
	}
	for _, r := range e.Recipients {
		if r == seat {
			return true
		}
	}
	return false
}

// Game is a turn-based game driven by a host. Calls are never concurrent.
type Game interface {
	// Name is the registry key.
	Name() string
	// StartGame begins play with seats in play order.
	StartGame(seats []int) ([]Event, error)
	// HandleAction applies one named action. On error the state is unchanged.
	HandleAction(seat int, action string, params json.RawMessage) ([]Event, error)
	// Snapshot returns the view of seat, or the public view for NoSeat.
	Snapshot(seat int) any
	// Update advances time-based state.
	Update(dt time.Duration) []Event
}
