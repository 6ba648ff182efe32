// Package signal is the WebSocket signaling controller. It upgrades
// connections, parses inbound frames, drives the room registry, and relays
// negotiation payloads between paired connections.
package signal

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/nothingtosurprise/VisionClaw/internal/app"
	"github.com/nothingtosurprise/VisionClaw/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

// serverFrame covers every server→client control frame. Relayed
// offer/answer/candidate frames bypass it: they are forwarded raw.
type serverFrame struct {
	Type    string `json:"type"`
	Room    string `json:"room,omitempty"`
	Message string `json:"message,omitempty"`
}

type Controller struct {
	registry   *app.RoomRegistry
	readLimit  int64
	pingPeriod time.Duration
}

func NewController(registry *app.RoomRegistry, readLimit int64, pingPeriod time.Duration) *Controller {
	return &Controller{
		registry:   registry,
		readLimit:  readLimit,
		pingPeriod: pingPeriod,
	}
}

type wsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSignal upgrades the request and starts the connection's pumps. Each
// connection gets a fresh session id; the client token cookie only
// correlates reconnects in the logs.
func (ctl *Controller) HandleSignal(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}

	sid := core.SessionID(uuid.NewString())
	conn := &wsConn{
		conn: ws,
		send: make(chan core.Frame, 32),
	}
	sess := core.NewPeerSession(sid, conn)

	l := log.With().
		Str("module", "signal").
		Str("sid", string(sid)).
		Str("client_token", c.GetString("client_token")).
		Logger()
	l.Info().Msg("new WS connection")

	go ctl.writePump(conn, l)
	go ctl.readPump(sess, conn, l)
}
