package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	mockRepo "tracker/internal/mocks/repository"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service      *statsService
	accountRepo  *mockRepo.MockAccountRepository
	employeeRepo *mockRepo.MockEmployeeRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)

	svc := NewStatsService(StatsServiceParams{
		AccountRepo:  accountRepo,
		EmployeeRepo: employeeRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*statsService)

	return statsServiceFixtures{
		service:      svc,
		accountRepo:  accountRepo,
		employeeRepo: employeeRepo,
	}
}

func TestStatsService_CountsByStatus_ZeroFilled(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	employee := &entity.Employee{ID: uuid.New(), Name: "Eve"}

	fx.employeeRepo.EXPECT().FindByID(ctx, employee.ID).Return(employee, nil)
	fx.accountRepo.EXPECT().
		CountByStatus(ctx, repository.AccountFilter{AssignedEmployeeID: &employee.ID}).
		Return(entity.StatusCounts{entity.AccountStatusPending: 1, entity.AccountStatusCompleted: 2}, nil)

	counts, err := fx.service.CountsByStatus(ctx, employeeIdentity(employee.ID), employee.ID)

	require.NoError(t, err)
	assert.Len(t, counts, 4)
	assert.Equal(t, int64(0), counts[entity.AccountStatusInProgress])
	assert.Equal(t, int64(0), counts[entity.AccountStatusClosed])
	assert.Equal(t, int64(3), counts.Total())
}

func TestStatsService_CountsByStatus_UnknownEmployee(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.employeeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrEmployeeNotFound)

	_, err := fx.service.CountsByStatus(ctx, adminIdentity(), id)

	assert.True(t, errors.Is(err, domainerrors.ErrEmployeeNotFound))
}

func TestStatsService_CountsByStatus_OtherEmployeeForbidden(t *testing.T) {
	fx := createTestStatsService(t)

	_, err := fx.service.CountsByStatus(context.Background(), employeeIdentity(uuid.New()), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestStatsService_CompletedInWindow_JulyScenario(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	employee := &entity.Employee{ID: uuid.New()}
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	completed := entity.AccountStatusCompleted

	fx.employeeRepo.EXPECT().FindByID(ctx, employee.ID).Return(employee, nil)
	fx.accountRepo.EXPECT().
		Count(ctx, repository.AccountFilter{
			AssignedEmployeeID: &employee.ID,
			Status:             &completed,
			CompletedFrom:      &start,
			CompletedTo:        &end,
		}).
		Return(2, nil)

	n, err := fx.service.CompletedInWindow(ctx, adminIdentity(), employee.ID, start, end)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStatsService_CompletedInWindow_RejectsEmptyWindow(t *testing.T) {
	fx := createTestStatsService(t)

	at := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	employeeID := uuid.New()

	_, err := fx.service.CompletedInWindow(context.Background(), adminIdentity(), employeeID, at, at)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = fx.service.CompletedInWindow(context.Background(), adminIdentity(), employeeID, at.Add(time.Hour), at)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestStatsService_CompletedThisMonth_UsesCalendarMonth(t *testing.T) {
	fx := createTestStatsService(t)
	fx.service.now = fixedClock(time.Date(2024, 12, 18, 15, 0, 0, 0, time.UTC))

	ctx := context.Background()
	employee := &entity.Employee{ID: uuid.New()}

	fx.employeeRepo.EXPECT().FindByID(ctx, employee.ID).Return(employee, nil)
	fx.accountRepo.EXPECT().
		Count(ctx, mock.MatchedBy(func(f repository.AccountFilter) bool {
			return f.CompletedFrom.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) &&
				f.CompletedTo.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				*f.Status == entity.AccountStatusCompleted
		})).
		Return(5, nil)

	n, err := fx.service.CompletedThisMonth(ctx, employeeIdentity(employee.ID), employee.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestStatsService_DailyCompletedStats(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	alice := &entity.Employee{ID: uuid.New(), Name: "Alice"}
	bob := &entity.Employee{ID: uuid.New(), Name: "Bob"}
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)
	completed := entity.AccountStatusCompleted

	accounts := []*entity.Account{
		{ID: uuid.New(), Status: completed, CompletedDate: timePtr(day.Add(time.Hour)), AssignedEmployeeID: alice.ID},
		{ID: uuid.New(), Status: completed, CompletedDate: timePtr(day.Add(2 * time.Hour)), AssignedEmployeeID: bob.ID},
		{ID: uuid.New(), Status: completed, CompletedDate: timePtr(day.Add(3 * time.Hour)), AssignedEmployeeID: bob.ID},
	}

	fx.accountRepo.EXPECT().
		Find(ctx, repository.AccountFilter{Status: &completed, CompletedFrom: &day, CompletedTo: &next}).
		Return(accounts, nil)
	fx.employeeRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{alice.ID, bob.ID}).
		Return([]*entity.Employee{alice, bob}, nil)

	stats, err := fx.service.DailyCompletedStats(ctx, adminIdentity(), "2024-07-01")

	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", stats.Date)
	assert.Equal(t, int64(3), stats.TotalAccounts)
	assert.Equal(t, []entity.EmployeeCount{
		{EmployeeID: bob.ID, Name: "Bob", Count: 2},
		{EmployeeID: alice.ID, Name: "Alice", Count: 1},
	}, stats.ByEmployee)
}

func TestStatsService_DailyCompletedStats_NoCompletions(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().Find(ctx, mock.Anything).Return([]*entity.Account{}, nil)

	stats, err := fx.service.DailyCompletedStats(ctx, adminIdentity(), "2024-07-02")

	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalAccounts)
	assert.Empty(t, stats.ByEmployee)
}

func TestStatsService_DailyCompletedStats_InvalidDate(t *testing.T) {
	fx := createTestStatsService(t)

	_, err := fx.service.DailyCompletedStats(context.Background(), adminIdentity(), "2024-13-45")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = fx.service.DailyCompletedStats(context.Background(), employeeIdentity(uuid.New()), "2024-07-01")
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestStatsService_AllEmployeeProgress(t *testing.T) {
	fx := createTestStatsService(t)
	fx.service.now = fixedClock(time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC))

	ctx := context.Background()
	alice := &entity.Employee{ID: uuid.New(), Name: "Alice"}
	bob := &entity.Employee{ID: uuid.New(), Name: "Bob"}
	role := entity.RoleEmployee

	fx.employeeRepo.EXPECT().List(ctx, &role).Return([]*entity.Employee{alice, bob}, nil)
	fx.accountRepo.EXPECT().
		CountByStatus(mock.Anything, repository.AccountFilter{AssignedEmployeeID: &alice.ID}).
		Return(entity.StatusCounts{entity.AccountStatusCompleted: 4}, nil)
	fx.accountRepo.EXPECT().
		CountByStatus(mock.Anything, repository.AccountFilter{AssignedEmployeeID: &bob.ID}).
		Return(entity.StatusCounts{}, nil)
	fx.accountRepo.EXPECT().
		Count(mock.Anything, mock.MatchedBy(func(f repository.AccountFilter) bool { return *f.AssignedEmployeeID == alice.ID })).
		Return(3, nil)
	fx.accountRepo.EXPECT().
		Count(mock.Anything, mock.MatchedBy(func(f repository.AccountFilter) bool { return *f.AssignedEmployeeID == bob.ID })).
		Return(0, nil)

	progress, err := fx.service.AllEmployeeProgress(ctx, adminIdentity())

	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.Equal(t, "Alice", progress[0].Employee.Name)
	assert.Equal(t, int64(4), progress[0].Total)
	assert.Equal(t, int64(3), progress[0].CompletedThisMonth)
	assert.Equal(t, "Bob", progress[1].Employee.Name)
	assert.Equal(t, int64(0), progress[1].Total)
	assert.Len(t, progress[1].Counts, 4)
}

func TestStatsService_EmployeeProgress_StoreFailure(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	employee := &entity.Employee{ID: uuid.New(), Name: "Eve"}
	fx.employeeRepo.EXPECT().FindByID(ctx, employee.ID).Return(employee, nil)
	fx.accountRepo.EXPECT().CountByStatus(ctx, mock.Anything).Return(nil, errors.New("server selection timeout"))

	_, err := fx.service.EmployeeProgress(ctx, employeeIdentity(employee.ID), employee.ID)

	assert.True(t, domainerrors.IsRetryable(err))
}
