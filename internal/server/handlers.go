package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"

	"settlers/internal/auth"
	"settlers/internal/catan"
	"settlers/internal/config"
	"settlers/internal/engine"
	"settlers/internal/lobby"
	qr "settlers/internal/qrcode"
)

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	LobbyMgr *lobby.Manager
	Games    *engine.Registry
	Signer   *auth.Signer
	Config   config.Config

	mu       sync.Mutex
	hubs     map[string]*Hub
	upgrader websocket.Upgrader
}

func NewHandlers(cfg config.Config) *Handlers {
	rules := catan.DefaultConfig()
	rules.RollDisplay = cfg.RollDisplay

	games := engine.NewRegistry()
	if err := games.Register(catan.Name, catan.FactoryWith(rules)); err != nil {
		panic(err)
	}

	h := &Handlers{
		LobbyMgr: lobby.NewManager(),
		Games:    games,
		Signer:   auth.NewSigner(cfg.TokenSecret, auth.DefaultTTL),
		Config:   cfg,
		hubs:     make(map[string]*Hub),
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

// checkOrigin allows any origin when no allowlist is configured.
func (h *Handlers) checkOrigin(r *http.Request) bool {
	if len(h.Config.Origins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || slices.Contains(h.Config.Origins, origin)
}

// Hub returns the room with the given id.
func (h *Handlers) Hub(gameID string) (*Hub, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hub, ok := h.hubs[gameID]
	return hub, ok
}

// Close stops every room.
func (h *Handlers) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, hub := range h.hubs {
		hub.Stop()
		h.LobbyMgr.Remove(id)
		delete(h.hubs, id)
	}
}

// HandleCreateGame creates a new game lobby and redirects to its board.
// ?game= picks a registered game and defaults to catan.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("game")
	if name == "" {
		name = catan.Name
	}
	factory, err := h.Games.Lookup(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lob := h.LobbyMgr.Create(name)
	gameID := lob.ID
	hub := NewHub(gameID, lob, RoomOptions{
		Game:    name,
		Factory: factory,
		Seed:    h.Config.Seed,
		Tick:    h.Config.Tick,
	})
	h.mu.Lock()
	h.hubs[gameID] = hub
	h.mu.Unlock()
	go hub.Run()

	log.Printf("[%s] created %s room (%d open)", gameID, name, h.LobbyMgr.Len())
	http.Redirect(w, r, fmt.Sprintf("/tv.html?game=%s", gameID), http.StatusSeeOther)
}

// HandleQR generates a QR code PNG for joining the game.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	size := qr.DefaultSize
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad size parameter", http.StatusBadRequest)
			return
		}
		size = n
	}
	png, err := qr.Generate(qr.JoinURL(r.Host, gameID), size)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS upgrades a connection and hands it to the room. Players must
// present the token issued with their id.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	gameID := q.Get("game")
	playerID := q.Get("player")
	ct := ParseClientType(q.Get("type"))

	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	hub, ok := h.Hub(gameID)
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	if ct == ClientPlayer {
		if err := h.Signer.Verify(q.Get("token"), gameID, playerID); err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
	} else {
		playerID = ""
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := NewClient(hub, conn, playerID, ct)
	if !hub.Register(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID issues a player id and seat token for ?game=.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if _, ok := h.Hub(gameID); !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	sess, err := NewSession(h.Signer, gameID)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess)
}

// HandleHealth reports liveness.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
