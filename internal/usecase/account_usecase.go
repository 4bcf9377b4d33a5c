package usecase

import (
	"context"

	"github.com/google/uuid"

	"tracker/internal/domain/entity"
)

// CreateAccountInput defines the data required to create an account.
// Status defaults to pending and AccountType to ps when left empty.
type CreateAccountInput struct {
	Email              string    `validate:"required,email"`
	CredentialSecret   string    `validate:"required,min=6"`
	Code               string    `validate:"required"`
	Status             string    `validate:"omitempty"`
	AccountType        string    `validate:"omitempty,oneof=ps pc"`
	Quantity           int       `validate:"gte=0"`
	SearchCount        int       `validate:"gte=0"`
	AssignedEmployeeID uuid.UUID `validate:"required"`
}

// AccountPatch is a partial update. Nil fields are left unchanged.
type AccountPatch struct {
	Email              *string    `validate:"omitempty,email"`
	CredentialSecret   *string    `validate:"omitempty,min=6"`
	Code               *string    `validate:"omitempty,min=1"`
	Status             *string    `validate:"omitempty"`
	AccountType        *string    `validate:"omitempty,oneof=ps pc"`
	Quantity           *int       `validate:"omitempty,gte=0"`
	SearchCount        *int       `validate:"omitempty,gte=0"`
	AssignedEmployeeID *uuid.UUID `validate:"omitempty"`
}

// TouchesAdminFields reports whether the patch changes anything besides status and the counters.
func (p *AccountPatch) TouchesAdminFields() bool {
	return p.Email != nil || p.CredentialSecret != nil || p.Code != nil ||
		p.AccountType != nil || p.AssignedEmployeeID != nil
}

// AccountListFilter narrows account listings. Empty fields do not constrain the result.
type AccountListFilter struct {
	AssignedEmployeeID *uuid.UUID
	Status             string
}

// AccountUsecase is the account store contract exposed to the delivery layer.
// Every operation is authorized against the acting identity.
type AccountUsecase interface {
	Create(ctx context.Context, identity *entity.Identity, input *CreateAccountInput) (*entity.Account, error)
	Get(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Account, error)
	ListByEmployee(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) ([]*entity.Account, error)
	List(ctx context.Context, identity *entity.Identity, filter *AccountListFilter) ([]*entity.Account, error)
	Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, patch *AccountPatch) (*entity.Account, error)
	Delete(ctx context.Context, identity *entity.Identity, id uuid.UUID) error

	// RevealSecret decrypts the credential secret for the administrator or the assigned employee.
	RevealSecret(ctx context.Context, identity *entity.Identity, id uuid.UUID) (string, error)

	ListCompleted(ctx context.Context, identity *entity.Identity) ([]*entity.Account, error)
	// ListCompletedOnDay lists accounts whose completedDate falls on the given YYYY-MM-DD day.
	ListCompletedOnDay(ctx context.Context, identity *entity.Identity, day string) ([]*entity.Account, error)
}
