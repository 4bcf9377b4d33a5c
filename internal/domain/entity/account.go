// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus is the lifecycle state of an account.
// Any status may move to any other status; only membership in the set is enforced.
type AccountStatus string

const (
	AccountStatusPending    AccountStatus = "pending"
	AccountStatusInProgress AccountStatus = "in-progress"
	AccountStatusCompleted  AccountStatus = "completed"
	AccountStatusClosed     AccountStatus = "closed"
)

// AccountStatuses lists every valid status in display order.
func AccountStatuses() []AccountStatus {
	return []AccountStatus{
		AccountStatusPending,
		AccountStatusInProgress,
		AccountStatusCompleted,
		AccountStatusClosed,
	}
}

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusInProgress, AccountStatusCompleted, AccountStatusClosed:
		return true
	default:
		return false
	}
}

// AccountType distinguishes the two kinds of third-party service accounts.
type AccountType string

const (
	AccountTypePS AccountType = "ps"
	AccountTypePC AccountType = "pc"
)

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	return t == AccountTypePS || t == AccountTypePC
}

// EmployeeRef is the display projection of the employee an account is assigned to.
type EmployeeRef struct {
	ID   uuid.UUID
	Name string
}

// Account is a third-party service credential assigned to one employee.
type Account struct {
	ID                 uuid.UUID     // Immutable identifier assigned at creation.
	Email              string        // Unique across all accounts.
	CredentialSecret   string        // Encrypted credential; never the plaintext once persisted.
	Code               string        // Short reference code.
	Status             AccountStatus // Current lifecycle state.
	AccountType        AccountType
	Quantity           int
	SearchCount        int
	AssignedEmployeeID uuid.UUID
	AssignedEmployee   *EmployeeRef // Resolved on reads, nil when the employee no longer exists.
	CompletedDate      *time.Time   // Non-nil if and only if Status is completed.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ApplyStatus moves the account to status and keeps CompletedDate consistent with it.
// Entering completed stamps now; leaving completed clears the date; staying completed keeps it.
func (a *Account) ApplyStatus(status AccountStatus, now time.Time) {
	if status == AccountStatusCompleted {
		if a.Status != AccountStatusCompleted || a.CompletedDate == nil {
			completedAt := now
			a.CompletedDate = &completedAt
		}
	} else {
		a.CompletedDate = nil
	}

	a.Status = status
}

// IsAssignedTo reports whether the account belongs to the given employee.
func (a *Account) IsAssignedTo(employeeID uuid.UUID) bool {
	return a.AssignedEmployeeID == employeeID
}
