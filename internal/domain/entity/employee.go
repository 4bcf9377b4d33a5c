package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a person who can sign in: either an administrator or an employee who works accounts.
type Employee struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the employee.
	Name         string    // Display name.
	Email        string    // Unique login identifier, stored lower-cased.
	Role         Role      // Either admin or employee.
	Phone        string    // Optional contact number.
	NationalID   string    // Optional national identity number.
	PasswordHash string    // bcrypt hash of the login password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref returns the display projection of the employee.
func (e *Employee) Ref() *EmployeeRef {
	return &EmployeeRef{ID: e.ID, Name: e.Name}
}
