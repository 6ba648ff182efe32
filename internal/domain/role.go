package domain

// Role is what a connection is to its room. Assigned at most once.
type Role int

const (
	RoleUnassigned Role = iota
	RoleCreator
	RoleViewer
)

func (r Role) String() string {
	switch r {
	case RoleCreator:
		return "creator"
	case RoleViewer:
		return "viewer"
	default:
		return "unassigned"
	}
}
