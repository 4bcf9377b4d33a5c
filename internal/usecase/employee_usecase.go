// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register an employee or the first administrator.
type RegisterInput struct {
	Name       string `validate:"required,max=100"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=6"`
	Phone      string `validate:"omitempty,max=32"`
	NationalID string `validate:"omitempty,max=32"`
}

// LoginInput defines the data required for an employee to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the issued bearer token together with the signed-in employee.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	Employee  *entity.Employee
}

// EmployeeUsecase is the employee directory: sign-in, identity resolution and employee lookups.
type EmployeeUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// SetupAdmin creates the first administrator and is refused once any administrator exists.
	SetupAdmin(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// ResolveIdentity verifies a bearer token and returns the acting identity.
	ResolveIdentity(ctx context.Context, token string) (*entity.Identity, error)

	Me(ctx context.Context, identity *entity.Identity) (*entity.Employee, error)
	FindByID(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) (*entity.Employee, error)
	ListEmployees(ctx context.Context, identity *entity.Identity) ([]*entity.Employee, error)
}
