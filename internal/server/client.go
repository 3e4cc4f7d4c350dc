package server

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"settlers/internal/engine"
	"settlers/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 256
)

// ClientType distinguishes the shared board display from seated players.
type ClientType int

const (
	ClientTV     ClientType = 0
	ClientPlayer ClientType = 1
)

// ParseClientType maps the ?type= query value. Anything but "tv" is a player.
func ParseClientType(s string) ClientType {
	if s == "tv" {
		return ClientTV
	}
	return ClientPlayer
}

// Client is one websocket connection in a room. PlayerID is fixed at
// connect time from a verified token; the TV has none.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	PlayerID string
	Type     ClientType
}

func NewClient(hub *Hub, conn *websocket.Conn, playerID string, clientType ClientType) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		PlayerID: playerID,
		Type:     clientType,
	}
}

// seat returns the seat this client views the game from.
func (c *Client) seat(seats map[string]int) int {
	if c.Type == ClientTV {
		return engine.NoSeat
	}
	if s, ok := seats[c.PlayerID]; ok {
		return s
	}
	return engine.NoSeat
}

// ReadPump reads messages from the WebSocket and forwards to the hub.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.quit:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[%s] ws read error: %v", c.hub.gameID, err)
			}
			break
		}
		var env protocol.Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			log.Printf("[%s] ws parse error: %v", c.hub.gameID, err)
			continue
		}
		select {
		case c.hub.incoming <- IncomingMessage{Client: c, Envelope: env}:
		case <-c.hub.quit:
			return
		}
	}
}

// WritePump writes messages from the send channel to the WebSocket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendEnvelope queues a typed message for this client. Messages to a
// client whose buffer is full are dropped.
func (c *Client) SendEnvelope(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.queue(data)
}

func (c *Client) queue(data []byte) {
	select {
	case c.send <- data:
	default:
		log.Printf("client %s send buffer full, dropping message", c.PlayerID)
	}
}

// IncomingMessage pairs a message with its source client.
type IncomingMessage struct {
	Client   *Client
	Envelope protocol.Envelope
}
