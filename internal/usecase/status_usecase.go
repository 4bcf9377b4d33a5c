package usecase

import (
	"context"

	"github.com/google/uuid"

	"tracker/internal/domain/entity"
)

// StatusUsecase applies single-account status changes.
type StatusUsecase interface {
	// SetStatus moves one account to status. Any status may move to any other status.
	SetStatus(ctx context.Context, identity *entity.Identity, accountID uuid.UUID, status string) (*entity.Account, error)
}

// BulkUpdateInput identifies the accounts to move and their target status.
type BulkUpdateInput struct {
	IDs    []string
	Status string
}

// BulkUpdateOutput reports the records that were written.
type BulkUpdateOutput struct {
	UpdatedCount    int
	UpdatedAccounts []*entity.Account
}

// BulkUpdateUsecase applies one status to many accounts, best-effort per record.
type BulkUpdateUsecase interface {
	BulkUpdate(ctx context.Context, identity *entity.Identity, input *BulkUpdateInput) (*BulkUpdateOutput, error)
}
