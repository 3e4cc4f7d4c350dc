package server

import (
	"encoding/json"
	"errors"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"settlers/internal/engine"
	"settlers/internal/lobby"
	"settlers/internal/protocol"
)

// maxLogEvents bounds the public event history replayed to new connections.
const maxLogEvents = 64

var (
	errNotStarted = errors.New("game not started")
	errNoSeat     = errors.New("you are not seated in this game")
	errTVAction   = errors.New("the board display cannot act")
)

// RoomOptions configures a Hub.
type RoomOptions struct {
	Game     string         // registry key
	Factory  engine.Factory // creates the game at start
	Seed     uint64         // 0 draws a random seed
	Tick     time.Duration  // how often Update runs
	LogLimit int            // replayed public events, 0 uses maxLogEvents
}

// Hub manages WebSocket connections and game state for one game room.
// Game state is only touched from Run.
type Hub struct {
	mu         sync.Mutex
	gameID     string
	opts       RoomOptions
	lobby      *lobby.Lobby
	game       engine.Game
	seats      map[string]int // player id -> seat
	history    []protocol.EventMsg
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
	stopOnce   sync.Once
}

func NewHub(gameID string, lob *lobby.Lobby, opts RoomOptions) *Hub {
	if opts.LogLimit <= 0 {
		opts.LogLimit = maxLogEvents
	}
	return &Hub{
		gameID:     gameID,
		opts:       opts,
		lobby:      lob,
		seats:      make(map[string]int),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

// Register hands a connection to the hub. It reports false once the hub
// has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.quit:
		return false
	}
}

// Stop ends Run and closes every connection.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

func (h *Hub) Run() {
	var ticks <-chan time.Time
	if h.opts.Tick > 0 {
		ticker := time.NewTicker(h.opts.Tick)
		defer ticker.Stop()
		ticks = ticker.C
	}
	last := time.Now()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.welcome(client)
			h.sendLobbyUpdate()
			if h.game != nil {
				h.sendStateToClient(client)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case now := <-ticks:
			dt := now.Sub(last)
			last = now
			h.update(dt)

		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) update(dt time.Duration) {
	if h.game == nil {
		return
	}
	events := h.game.Update(dt)
	if len(events) == 0 {
		return
	}
	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	h.mu.Lock()
	connected := h.clients[msg.Client]
	h.mu.Unlock()
	if !connected {
		return
	}

	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgReady:
		h.handleReady(msg)
	case protocol.MsgStartGame:
		h.handleStartGame(msg)
	case protocol.MsgAction:
		h.handleGameAction(msg)
	default:
		h.sendError(msg.Client, "unknown message type "+msg.Envelope.Type)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	if msg.Client.Type == ClientTV {
		h.sendError(msg.Client, errTVAction.Error())
		return
	}
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	if join.Name == "" {
		join.Name = "Player"
	}
	if err := h.lobby.Join(msg.Client.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	log.Printf("[%s] %s joined as %q", h.gameID, msg.Client.PlayerID, join.Name)
	h.sendLobbyUpdate()
}

func (h *Hub) handleReady(msg IncomingMessage) {
	var ready protocol.ReadyMsg
	if err := msg.Envelope.Decode(&ready); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.lobby.SetReady(msg.Client.PlayerID, ready.Ready)
	h.sendLobbyUpdate()
}

func (h *Hub) handleStartGame(msg IncomingMessage) {
	if _, err := h.lobby.SeatOf(msg.Client.PlayerID); err != nil && msg.Client.Type != ClientTV {
		h.sendError(msg.Client, err.Error())
		return
	}
	seats, err := h.lobby.Start()
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	seed := h.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	game := h.opts.Factory(rand.New(rand.NewPCG(seed, seed)))
	events, err := game.StartGame(seats)
	if err != nil {
		h.lobby.Reopen()
		log.Printf("[%s] start failed: %v", h.gameID, err)
		h.sendError(msg.Client, err.Error())
		return
	}
	h.game = game
	for _, p := range h.lobby.GetPlayers() {
		h.seats[p.ID] = p.Seat
	}
	log.Printf("[%s] %s started with %d seats (seed %d)", h.gameID, h.opts.Game, len(seats), seed)

	h.sendLobbyUpdate()
	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) handleGameAction(msg IncomingMessage) {
	if h.game == nil {
		h.sendError(msg.Client, errNotStarted.Error())
		return
	}
	if msg.Client.Type == ClientTV {
		h.sendError(msg.Client, errTVAction.Error())
		return
	}
	seat, ok := h.seats[msg.Client.PlayerID]
	if !ok {
		h.sendError(msg.Client, errNoSeat.Error())
		return
	}

	var action protocol.ActionMsg
	if err := msg.Envelope.Decode(&action); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	events, err := h.game.HandleAction(seat, action.Action, action.Params)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	h.broadcastEvents(events)
	h.broadcastState()
}

// broadcastEvents delivers each event to the clients allowed to see it
// and records public ones for replay.
func (h *Hub) broadcastEvents(events []engine.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ev := range events {
		out := protocol.EventMsg{Type: string(ev.Type), Seat: ev.Seat, Data: ev.Data}
		data, err := json.Marshal(protocol.MustEnvelope(protocol.MsgEvent, out))
		if err != nil {
			log.Printf("[%s] event marshal error: %v", h.gameID, err)
			continue
		}
		if !ev.Private() {
			h.record(out)
		}
		for client := range h.clients {
			if ev.VisibleTo(client.seat(h.seats)) {
				client.queue(data)
			}
		}
	}
}

func (h *Hub) record(ev protocol.EventMsg) {
	h.history = append(h.history, ev)
	if over := len(h.history) - h.opts.LogLimit; over > 0 {
		h.history = append(h.history[:0], h.history[over:]...)
	}
}

func (h *Hub) broadcastState() {
	if h.game == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.sendStateToClient(client)
	}
}

// sendStateToClient sends the public snapshot to the TV and spectators
// and a seat snapshot to seated players.
func (h *Hub) sendStateToClient(client *Client) {
	if h.game == nil {
		return
	}
	seat := client.seat(h.seats)
	if seat == engine.NoSeat {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, h.game.Snapshot(engine.NoSeat)))
		return
	}
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgPlayerState, h.game.Snapshot(seat)))
}

// welcome tells a new connection its identity and replays recent public
// events.
func (h *Hub) welcome(client *Client) {
	seat := engine.NoSeat
	if client.Type == ClientPlayer {
		if s, err := h.lobby.SeatOf(client.PlayerID); err == nil {
			seat = s
		}
	}
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgWelcome, protocol.WelcomeMsg{
		GameID:   h.gameID,
		PlayerID: client.PlayerID,
		Seat:     seat,
	}))

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ev := range h.history {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgEvent, ev))
	}
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Ready: p.Ready, Seat: p.Seat}
	}
	env := protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameID:  h.gameID,
		Game:    h.opts.Game,
		Players: lps,
		Started: h.lobby.IsStarted(),
	})
	h.broadcastAll(env)
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("broadcast marshal error: %v", err)
		return
	}
	for client := range h.clients {
		client.queue(data)
	}
}

func (h *Hub) sendError(client *Client, message string) {
	env := protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message})
	client.SendEnvelope(env)
}
