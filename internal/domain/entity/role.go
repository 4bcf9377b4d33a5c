package entity

// Role represents the type of role an employee can have in the system.
type Role string

const (
	// RoleAdmin can manage every account and employee.
	RoleAdmin Role = "admin"
	// RoleEmployee works the accounts assigned to them.
	RoleEmployee Role = "employee"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	default:
		return false
	}
}
