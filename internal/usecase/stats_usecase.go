package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker/internal/domain/entity"
)

// StatsUsecase derives progress figures from the account store on demand.
type StatsUsecase interface {
	// CountsByStatus partitions an employee's accounts by status, zero-filled.
	CountsByStatus(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) (entity.StatusCounts, error)

	// CompletedInWindow counts an employee's completed accounts with completedDate in [start, end).
	CompletedInWindow(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID, start, end time.Time) (int64, error)

	// CompletedThisMonth is CompletedInWindow over the current calendar month in the configured time zone.
	CompletedThisMonth(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) (int64, error)

	// DailyCompletedStats summarises completions on one YYYY-MM-DD day.
	DailyCompletedStats(ctx context.Context, identity *entity.Identity, day string) (*entity.DailyStats, error)

	// EmployeeProgress returns the dashboard view for one employee.
	EmployeeProgress(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) (*entity.EmployeeProgress, error)

	// AllEmployeeProgress returns the dashboard view for every employee.
	AllEmployeeProgress(ctx context.Context, identity *entity.Identity) ([]*entity.EmployeeProgress, error)
}
