package core

import "github.com/nothingtosurprise/VisionClaw/internal/domain"

type SessionID string

// PeerSession is the per-connection record: identity, transport endpoint,
// and current role/room membership. Role and room are written only by the
// registry, under its lock; the owning read pump is the only other reader.
type PeerSession struct {
	id   SessionID
	conn SignalConnection

	role domain.Role
	room domain.RoomCode
}

func NewPeerSession(id SessionID, conn SignalConnection) *PeerSession {
	return &PeerSession{id: id, conn: conn}
}

func (s *PeerSession) ID() SessionID            { return s.id }
func (s *PeerSession) Signal() SignalConnection { return s.conn }
func (s *PeerSession) Role() domain.Role        { return s.role }

// Room returns the code recorded at create/join time. The room itself may
// already be gone; only the registry knows.
func (s *PeerSession) Room() (domain.RoomCode, bool) {
	return s.room, s.room != ""
}

// Assign records role and room. The first assignment wins; a session never
// transitions back to unassigned or to another room.
func (s *PeerSession) Assign(role domain.Role, room domain.RoomCode) bool {
	if s.role != domain.RoleUnassigned {
		return false
	}
	s.role = role
	s.room = room
	return true
}
