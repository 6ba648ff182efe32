package signal

import (
	"github.com/rs/zerolog"

	"github.com/nothingtosurprise/VisionClaw/internal/core"
	"github.com/nothingtosurprise/VisionClaw/internal/domain"
)

// relay forwards an offer/answer/candidate frame byte-identical to the
// sender's counterpart. SDP and ICE contents are opaque here. A missing or
// unreachable counterpart is a silent drop: the sender has no recovery
// action, and a real disconnect surfaces as peer_left on its own path.
func (ctl *Controller) relay(sess *core.PeerSession, data core.Frame, l zerolog.Logger) {
	if sess.Role() == domain.RoleUnassigned {
		l.Debug().Msg("relay from roomless connection dropped")
		return
	}

	peer, ok := ctl.registry.Peer(sess)
	if !ok {
		l.Debug().Msg("relay dropped, no counterpart")
		return
	}
	if err := peer.Signal().TrySend(data); err != nil {
		l.Debug().Err(err).Msg("relay dropped, counterpart unreachable")
	}
}
