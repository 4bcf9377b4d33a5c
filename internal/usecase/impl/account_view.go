package impl

import (
	"context"

	"github.com/google/uuid"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
)

// employeeResolver fills in the display reference of the assigned employee on accounts.
type employeeResolver struct {
	employeeRepo repository.EmployeeRepository
}

// attach resolves AssignedEmployee for every account with one lookup.
// Accounts whose employee no longer exists keep a nil reference.
func (r *employeeResolver) attach(ctx context.Context, accounts ...*entity.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(accounts))
	ids := make([]uuid.UUID, 0, len(accounts))
	for _, account := range accounts {
		if _, ok := seen[account.AssignedEmployeeID]; ok {
			continue
		}
		seen[account.AssignedEmployeeID] = struct{}{}
		ids = append(ids, account.AssignedEmployeeID)
	}

	employees, err := r.employeeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return translateRepoError(err, "failed to resolve assigned employees")
	}

	refs := make(map[uuid.UUID]*entity.EmployeeRef, len(employees))
	for _, employee := range employees {
		refs[employee.ID] = employee.Ref()
	}

	for _, account := range accounts {
		account.AssignedEmployee = refs[account.AssignedEmployeeID]
	}

	return nil
}
