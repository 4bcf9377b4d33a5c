package entity

import "github.com/google/uuid"

// Identity is the acting caller resolved from a bearer token.
type Identity struct {
	EmployeeID uuid.UUID
	Role       Role
}

// IsAdmin reports whether the caller is an administrator.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// CanAccess reports whether the caller is an administrator or the employee assigned to the account.
func (i *Identity) CanAccess(account *Account) bool {
	if i == nil || account == nil {
		return false
	}

	return i.IsAdmin() || account.IsAssignedTo(i.EmployeeID)
}

// IsSelfOrAdmin reports whether the caller is an administrator or the given employee.
func (i *Identity) IsSelfOrAdmin(employeeID uuid.UUID) bool {
	return i.IsAdmin() || (i != nil && i.EmployeeID == employeeID)
}
