package user

type Role string

const (
	RoleAttendee Role = "attendee"
	RoleChef     Role = "chef"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAttendee, RoleChef, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanHost reports whether the role may publish dinner events.
func (r Role) CanHost() bool {
	return r == RoleChef || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
