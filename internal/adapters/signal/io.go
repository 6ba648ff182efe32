package signal

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/nothingtosurprise/VisionClaw/internal/core"
)

// Time allowed to write one message to the peer.
const writeWait = 10 * time.Second

func (ctl *Controller) writePump(c *wsConn, l zerolog.Logger) {
	ticker := time.NewTicker(ctl.pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				l.Debug().Err(err).Msg("writePump write error")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (ctl *Controller) readPump(sess *core.PeerSession, c *wsConn, l zerolog.Logger) {
	defer ctl.teardown(sess, l)

	// Pings go out every pingPeriod; give the pong a little slack.
	pongWait := ctl.pingPeriod * 10 / 9
	c.conn.SetReadLimit(ctl.readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Warn().Err(err).Msg("readPump unexpected close")
			}
			return
		}
		ctl.dispatch(sess, c, data, l)
	}
}

func (ctl *Controller) dispatch(sess *core.PeerSession, c *wsConn, data core.Frame, l zerolog.Logger) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil || env.Type == "" {
		l.Debug().Msg("malformed frame dropped")
		return
	}

	switch env.Type {
	case "create":
		ctl.handleCreate(sess, c, l)
	case "join":
		ctl.handleJoin(sess, c, data, l)
	case "offer", "answer", "candidate":
		ctl.relay(sess, data, l)
	default:
		l.Debug().Str("type", env.Type).Msg("unknown frame type dropped")
	}
}

// teardown is the single cleanup path for a closed connection: one registry
// leave, one peer_left to the survivor, then release the transport.
func (ctl *Controller) teardown(sess *core.PeerSession, l zerolog.Logger) {
	peer, role, ok := ctl.registry.Leave(sess)
	if ok && peer != nil {
		ctl.sendJSON(peer.Signal(), serverFrame{Type: "peer_left"}, l)
	}
	sess.Signal().Close()
	l.Info().Str("role", role.String()).Msg("connection closed")
}

func (ctl *Controller) sendJSON(sc core.SignalConnection, v any, l zerolog.Logger) {
	b, err := json.Marshal(v)
	if err != nil {
		l.Error().Err(err).Msg("sendJSON marshal")
		return
	}
	if err := sc.TrySend(b); err != nil {
		// Target gone or stalled; the disconnect path notifies separately.
		l.Debug().Err(err).Msg("send dropped")
	}
}
