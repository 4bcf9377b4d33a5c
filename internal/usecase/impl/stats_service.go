package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"
	"tracker/internal/util"
)

// progressWorkers bounds the concurrent per-employee queries of AllEmployeeProgress.
const progressWorkers = 4

// statsService implements the StatsUsecase interface. It only reads.
type statsService struct {
	accountRepo  repository.AccountRepository
	employeeRepo repository.EmployeeRepository
	location     *time.Location
	now          func() time.Time
	logger       *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	EmployeeRepo repository.EmployeeRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		accountRepo:  params.AccountRepo,
		employeeRepo: params.EmployeeRepo,
		location:     locationOf(params.Config),
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CountsByStatus partitions the employee's accounts by status.
func (srv *statsService) CountsByStatus(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) (entity.StatusCounts, error) {
	if err := requireSelfOrAdmin(identity, employeeID); err != nil {
		return nil, err
	}
	if _, err := srv.findEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	return srv.countsByStatus(ctx, employeeID)
}

// CompletedInWindow counts completions with completedDate in [start, end).
func (srv *statsService) CompletedInWindow(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID, start, end time.Time) (int64, error) {
	if err := requireSelfOrAdmin(identity, employeeID); err != nil {
		return 0, err
	}
	if !start.Before(end) {
		return 0, domainerrors.ErrInvalidInput.WithDetails("window start must be before window end")
	}
	if _, err := srv.findEmployee(ctx, employeeID); err != nil {
		return 0, err
	}

	return srv.completedBetween(ctx, employeeID, start, end)
}

// CompletedThisMonth counts completions in the current calendar month of the configured zone.
func (srv *statsService) CompletedThisMonth(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) (int64, error) {
	start, end := util.MonthWindow(srv.now(), srv.location)

	return srv.CompletedInWindow(ctx, identity, employeeID, start, end)
}

// DailyCompletedStats counts the accounts completed on day, overall and per employee.
func (srv *statsService) DailyCompletedStats(ctx context.Context, identity *entity.Identity, day string) (*entity.DailyStats, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	date, err := util.ParseDay(day, srv.location)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("date must be formatted as YYYY-MM-DD")
	}

	start, end := util.DayWindow(date, srv.location)
	completed := entity.AccountStatusCompleted

	accounts, err := srv.accountRepo.Find(ctx, repository.AccountFilter{
		Status:        &completed,
		CompletedFrom: &start,
		CompletedTo:   &end,
	})
	if err != nil {
		return nil, translateRepoError(err, "failed to list completed accounts")
	}

	perEmployee := make(map[uuid.UUID]int64)
	ids := make([]uuid.UUID, 0)
	for _, account := range accounts {
		if _, ok := perEmployee[account.AssignedEmployeeID]; !ok {
			ids = append(ids, account.AssignedEmployeeID)
		}
		perEmployee[account.AssignedEmployeeID]++
	}

	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) > 0 {
		employees, err := srv.employeeRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, translateRepoError(err, "failed to resolve employees")
		}
		for _, employee := range employees {
			names[employee.ID] = employee.Name
		}
	}

	byEmployee := make([]entity.EmployeeCount, 0, len(ids))
	for _, id := range ids {
		byEmployee = append(byEmployee, entity.EmployeeCount{EmployeeID: id, Name: names[id], Count: perEmployee[id]})
	}
	sort.SliceStable(byEmployee, func(i, j int) bool {
		if byEmployee[i].Count != byEmployee[j].Count {
			return byEmployee[i].Count > byEmployee[j].Count
		}

		return byEmployee[i].Name < byEmployee[j].Name
	})

	return &entity.DailyStats{
		Date:          date.Format(util.DayLayout),
		TotalAccounts: int64(len(accounts)),
		ByEmployee:    byEmployee,
	}, nil
}

// EmployeeProgress returns status counts and this month's completions for one employee.
func (srv *statsService) EmployeeProgress(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) (*entity.EmployeeProgress, error) {
	if err := requireSelfOrAdmin(identity, employeeID); err != nil {
		return nil, err
	}

	employee, err := srv.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return srv.progressOf(ctx, employee)
}

// AllEmployeeProgress returns the progress of every employee, ordered by name.
func (srv *statsService) AllEmployeeProgress(ctx context.Context, identity *entity.Identity) ([]*entity.EmployeeProgress, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	role := entity.RoleEmployee
	employees, err := srv.employeeRepo.List(ctx, &role)
	if err != nil {
		return nil, translateRepoError(err, "failed to list employees")
	}

	progress := make([]*entity.EmployeeProgress, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(progressWorkers)
	for i, employee := range employees {
		g.Go(func() error {
			p, err := srv.progressOf(gctx, employee)
			if err != nil {
				return err
			}
			progress[i] = p

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to compute employee progress", slog.Any("error", err))

		return nil, err
	}

	return progress, nil
}

func (srv *statsService) progressOf(ctx context.Context, employee *entity.Employee) (*entity.EmployeeProgress, error) {
	counts, err := srv.countsByStatus(ctx, employee.ID)
	if err != nil {
		return nil, err
	}

	start, end := util.MonthWindow(srv.now(), srv.location)
	month, err := srv.completedBetween(ctx, employee.ID, start, end)
	if err != nil {
		return nil, err
	}

	return &entity.EmployeeProgress{
		Employee:           *employee.Ref(),
		Counts:             counts,
		Total:              counts.Total(),
		CompletedThisMonth: month,
	}, nil
}

func (srv *statsService) countsByStatus(ctx context.Context, employeeID uuid.UUID) (entity.StatusCounts, error) {
	stored, err := srv.accountRepo.CountByStatus(ctx, repository.AccountFilter{AssignedEmployeeID: &employeeID})
	if err != nil {
		return nil, translateRepoError(err, "failed to count accounts by status")
	}

	// Re-project onto the full status set so missing statuses read as zero.
	counts := entity.NewStatusCounts()
	for status, n := range stored {
		if status.IsValid() {
			counts[status] = n
		}
	}

	return counts, nil
}

func (srv *statsService) completedBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (int64, error) {
	completed := entity.AccountStatusCompleted

	n, err := srv.accountRepo.Count(ctx, repository.AccountFilter{
		AssignedEmployeeID: &employeeID,
		Status:             &completed,
		CompletedFrom:      &start,
		CompletedTo:        &end,
	})
	if err != nil {
		return 0, translateRepoError(err, "failed to count completed accounts")
	}

	return n, nil
}

func (srv *statsService) findEmployee(ctx context.Context, employeeID uuid.UUID) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find employee")
	}

	return employee, nil
}
