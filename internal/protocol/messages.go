package protocol

import "encoding/json"

// Message types: Server → Client
const (
	MsgLobbyUpdate = "lobby_update"
	MsgGameState   = "game_state"   // public snapshot for the board display
	MsgPlayerState = "player_state" // snapshot for one seat
	MsgEvent       = "event"
	MsgWelcome     = "welcome"
	MsgError       = "error"
)

// Message types: Client → Server
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"
	MsgAction    = "action"
)

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameID  string        `json:"game_id"`
	Game    string        `json:"game"`
	Players []LobbyPlayer `json:"players"`
	Started bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
	Seat  int    `json:"seat"`
}

// JoinMsg is sent by a player to join the game.
type JoinMsg struct {
	Name string `json:"name"`
}

// ReadyMsg is sent by a player to toggle ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// ActionMsg carries one game action. Params are decoded by the game.
type ActionMsg struct {
	Action string          `json:"action"`
	Params json.RawMessage `json:"params,omitempty"`
}

// EventMsg is one game event as seen by clients.
type EventMsg struct {
	Type string      `json:"type"`
	Seat int         `json:"seat"`
	Data interface{} `json:"data,omitempty"`
}

// WelcomeMsg tells a connection who the hub thinks it is.
type WelcomeMsg struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id,omitempty"`
	Seat     int    `json:"seat"`
}

// PlayerIDResponse is returned by /api/player-id.
type PlayerIDResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
