package employee

type Employee struct {
	ID           int64
	Name         string
	Role         Role
	PasswordHash *string
	Deleted      bool
}

type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"

	// RoleDeveloper is a privilege level for maintenance sessions. It is
	// never persisted on an employee row.
	RoleDeveloper Role = "developer"
)

// ParseRole maps a raw string to the closed role set of persistable roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleManager:
		return RoleManager, nil
	case RoleEmployee:
		return RoleEmployee, nil
	}
	return "", ErrInvalidRole
}

// CanHoldCredential reports whether the role may carry a password hash.
func (r Role) CanHoldCredential() bool {
	return r == RoleOwner || r == RoleManager
}
