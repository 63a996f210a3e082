package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the client.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the client.
	pongWait = 60 * time.Second

	// Send pings to client with this period. Must be less than pongWait.
	pingPeriod = 15 * time.Second

	// Maximum message size allowed from client.
	maxMessageSize = 512

	// Outbound op buffer per client.
	sendBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Served from the same embedded SPA on localhost.
		return true
	},
}

// uiEvent is a message from the frontend.
type uiEvent struct {
	Event string `json:"event"`
	Index int    `json:"index"`
	Open  bool   `json:"open"`
}

// wsClient is one connected frontend.
type wsClient struct {
	conn *websocket.Conn
	send chan renderOp
	done chan struct{}
}

// HandleWS upgrades the connection and binds it to a session as its
// render target. GET /ws?session=<id>
func (h *SessionHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	entry := h.entry(r.URL.Query().Get("session"))

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan renderOp, sendBuffer),
		done: make(chan struct{}),
	}
	entry.bridge.attach(client)
	defer entry.bridge.detach(client)

	slog.Info("Frontend connected", "remote", conn.RemoteAddr())

	go client.writePump()
	client.readPump(entry)

	close(client.done)
	slog.Info("Frontend disconnected", "remote", conn.RemoteAddr())
}

// readPump consumes UI events and applies them to the session.
func (c *wsClient) readPump(entry *sessionEntry) {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("WebSocket read failed", "error", err)
			}
			return
		}

		var ev uiEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			slog.Warn("Malformed UI event", "error", err)
			continue
		}

		sess := entry.sess
		switch ev.Event {
		case "card_click", "timeline_click":
			sess.Select(ev.Index)
		case "step":
			sess.Step(ev.Index)
		case "focus":
			sess.FocusActive()
		case "panel_settled":
			sess.PanelSettled(ev.Open)
		default:
			slog.Debug("Unknown UI event", "event", ev.Event)
		}
	}
}

// writePump pushes render ops and keepalive pings to the client.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case op := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(op); err != nil {
				return
			}
		}
	}
}
