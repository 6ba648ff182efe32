package signal

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/nothingtosurprise/VisionClaw/internal/core"
	"github.com/nothingtosurprise/VisionClaw/internal/domain"
)

func (ctl *Controller) handleCreate(sess *core.PeerSession, c *wsConn, l zerolog.Logger) {
	if sess.Role() != domain.RoleUnassigned {
		// Roles are assigned once; a second create is not a transition.
		l.Debug().Str("role", sess.Role().String()).Msg("create from assigned connection ignored")
		return
	}

	code := ctl.registry.Create(sess)
	ctl.sendJSON(c, serverFrame{Type: "room_created", Room: string(code)}, l)
}

func (ctl *Controller) handleJoin(sess *core.PeerSession, c *wsConn, data core.Frame, l zerolog.Logger) {
	if sess.Role() != domain.RoleUnassigned {
		l.Debug().Str("role", sess.Role().String()).Msg("join from assigned connection ignored")
		return
	}

	var p struct {
		Type string `json:"type"`
		Room string `json:"room"`
	}
	if err := json.Unmarshal(data, &p); err != nil || p.Room == "" {
		l.Debug().Msg("join without room dropped")
		return
	}

	creator, err := ctl.registry.Join(domain.RoomCode(p.Room), sess)
	if err != nil {
		ctl.sendJSON(c, serverFrame{Type: "error", Message: err.Error()}, l)
		return
	}

	ctl.sendJSON(c, serverFrame{Type: "room_joined"}, l)
	ctl.sendJSON(creator.Signal(), serverFrame{Type: "peer_joined"}, l)
}
