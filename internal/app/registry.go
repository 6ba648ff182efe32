package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/nothingtosurprise/VisionClaw/internal/core"
	"github.com/nothingtosurprise/VisionClaw/internal/domain"
)

// room pairs the creating connection with at most one viewer. The creator
// slot is fixed for the room's whole life; the viewer slot may empty and
// refill.
type room struct {
	code    domain.RoomCode
	creator *core.PeerSession
	viewer  *core.PeerSession
}

// RoomRegistry owns the code→room mapping. Connections are served by
// parallel goroutines, so every operation takes the one lock; the invariants
// (unique live codes, one creator, at most one viewer, role assigned once)
// hold only because no two operations interleave.
type RoomRegistry struct {
	mu       sync.Mutex
	rooms    map[domain.RoomCode]*room
	generate func() domain.RoomCode
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms:    make(map[domain.RoomCode]*room),
		generate: domain.GenerateRoomCode,
	}
}

// Create registers a new room under a fresh code and marks sess as its
// creator. A generated code that collides with a live room is thrown away
// and redrawn, so an existing room is never overwritten.
func (r *RoomRegistry) Create(sess *core.PeerSession) domain.RoomCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	var code domain.RoomCode
	for {
		code = r.generate()
		if _, taken := r.rooms[code]; !taken {
			break
		}
	}

	r.rooms[code] = &room{code: code, creator: sess}
	sess.Assign(domain.RoleCreator, code)
	log.Info().Str("module", "app.registry").Str("room", string(code)).Str("sid", string(sess.ID())).Msg("room created")
	return code
}

// Join fills the viewer slot of an existing room and marks sess as its
// viewer. It returns the creator session so the caller can notify it.
func (r *RoomRegistry) Join(code domain.RoomCode, sess *core.PeerSession) (*core.PeerSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm, ok := r.rooms[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	if rm.viewer != nil {
		return nil, domain.ErrRoomFull
	}

	rm.viewer = sess
	sess.Assign(domain.RoleViewer, code)
	log.Info().Str("module", "app.registry").Str("room", string(code)).Str("sid", string(sess.ID())).Msg("viewer joined")
	return rm.creator, nil
}

// Leave removes sess from its room. A leaving creator destroys the room; a
// leaving viewer only frees the slot. The surviving counterpart (if any) is
// returned so the caller can notify it. No-op for sessions without a room.
func (r *RoomRegistry) Leave(sess *core.PeerSession) (peer *core.PeerSession, role domain.Role, ok bool) {
	code, has := sess.Room()
	if !has {
		return nil, domain.RoleUnassigned, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rm, found := r.rooms[code]
	if !found {
		// Room already destroyed by the creator's departure.
		return nil, sess.Role(), false
	}

	switch sess.Role() {
	case domain.RoleCreator:
		delete(r.rooms, code)
		log.Info().Str("module", "app.registry").Str("room", string(code)).Msg("room destroyed")
		return rm.viewer, domain.RoleCreator, true
	case domain.RoleViewer:
		if rm.viewer != sess {
			return nil, domain.RoleViewer, false
		}
		rm.viewer = nil
		log.Info().Str("module", "app.registry").Str("room", string(code)).Msg("viewer slot freed")
		return rm.creator, domain.RoleViewer, true
	}
	return nil, domain.RoleUnassigned, false
}

// Peer resolves the relay counterpart: the viewer for a creator, the
// creator for a viewer. False when the room is gone or the slot is empty.
func (r *RoomRegistry) Peer(sess *core.PeerSession) (*core.PeerSession, bool) {
	code, has := sess.Room()
	if !has {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rm, found := r.rooms[code]
	if !found {
		return nil, false
	}

	var peer *core.PeerSession
	if sess.Role() == domain.RoleCreator {
		peer = rm.viewer
	} else {
		peer = rm.creator
	}
	if peer == nil {
		return nil, false
	}
	return peer, true
}

// Len reports the number of live rooms.
func (r *RoomRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}
