package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tracker/internal/domain/entity"
)

var (
	// ErrEmployeeNotFound is returned when an employee is not found.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrDuplicateEmployeeEmail is returned when an employee with the same email already exists.
	ErrDuplicateEmployeeEmail = errors.New("employee email already exists")
)

// EmployeeRepository defines the standard operations for employee persistence.
type EmployeeRepository interface {
	// Create persists a new employee.
	Create(ctx context.Context, employee *entity.Employee) error

	// FindByID retrieves a single employee by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindByEmail retrieves a single employee by their (lower-cased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// FindByIDs retrieves the employees that exist among ids. Unknown ids are ignored.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Employee, error)

	// List returns employees ordered by name, optionally restricted to one role.
	List(ctx context.Context, role *entity.Role) ([]*entity.Employee, error)

	// CountByRole returns the number of employees holding role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
