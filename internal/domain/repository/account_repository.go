// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tracker/internal/domain/entity"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the given identifier.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccountEmail is returned when an account with the same email already exists.
	ErrDuplicateAccountEmail = errors.New("account email already exists")
)

// AccountFilter narrows account queries. Nil fields do not constrain the result.
// CompletedFrom and CompletedTo bound completedDate as the half-open interval [from, to).
type AccountFilter struct {
	AssignedEmployeeID *uuid.UUID
	Status             *entity.AccountStatus
	CompletedFrom      *time.Time
	CompletedTo        *time.Time
}

// AccountRepository defines the persistence operations for accounts.
// Every write touches exactly one record.
type AccountRepository interface {
	// Create persists a new account. Fails with ErrDuplicateAccountEmail on an email conflict.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Find returns the accounts matching filter, newest first. No match yields an empty slice.
	Find(ctx context.Context, filter AccountFilter) ([]*entity.Account, error)

	// Update overwrites the mutable fields of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete permanently removes an account.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns how many accounts match filter.
	Count(ctx context.Context, filter AccountFilter) (int64, error)

	// CountByStatus partitions the accounts matching filter by status.
	// Statuses without accounts are present with a zero count.
	CountByStatus(ctx context.Context, filter AccountFilter) (entity.StatusCounts, error)
}
