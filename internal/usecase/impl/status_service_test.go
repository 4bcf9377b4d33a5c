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
	"tracker/internal/domain/service"
	mockRepo "tracker/internal/mocks/repository"
	mockService "tracker/internal/mocks/service"
)

// statusServiceFixtures holds all test dependencies for status service tests.
type statusServiceFixtures struct {
	service      *statusService
	accountRepo  *mockRepo.MockAccountRepository
	employeeRepo *mockRepo.MockEmployeeRepository
	publisher    *mockService.MockEventPublisher
	metrics      *mockService.MockAccountMetrics
}

func createTestStatusService(t *testing.T) statusServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	metrics := mockService.NewMockAccountMetrics(t)

	svc := NewStatusService(StatusServiceParams{
		AccountRepo:  accountRepo,
		EmployeeRepo: employeeRepo,
		Publisher:    publisher,
		Metrics:      metrics,
		Logger:       newDiscardLogger(),
	}).(*statusService)

	return statusServiceFixtures{
		service:      svc,
		accountRepo:  accountRepo,
		employeeRepo: employeeRepo,
		publisher:    publisher,
		metrics:      metrics,
	}
}

func TestStatusService_SetStatus_CompletesAccount(t *testing.T) {
	fx := createTestStatusService(t)

	ctx := context.Background()
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	fx.service.now = fixedClock(now)

	owner := &entity.Employee{ID: uuid.New(), Name: "Alice"}
	account := &entity.Account{ID: uuid.New(), Status: entity.AccountStatusPending, AssignedEmployeeID: owner.ID}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Status == entity.AccountStatusCompleted && a.CompletedDate != nil && a.CompletedDate.Equal(now)
		})).
		Return(nil)
	fx.metrics.EXPECT().StatusChanged(entity.AccountStatusPending, entity.AccountStatusCompleted).Return()
	fx.publisher.EXPECT().
		PublishAccountStatusChanged(ctx, mock.MatchedBy(func(e *service.AccountStatusChangedEvent) bool {
			return e.AccountID == account.ID.String() && e.FromStatus == "pending" && e.ToStatus == "completed" && !e.Bulk
		})).
		Return(nil)
	fx.employeeRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{owner.ID}).Return([]*entity.Employee{owner}, nil)

	updated, err := fx.service.SetStatus(ctx, employeeIdentity(owner.ID), account.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusCompleted, updated.Status)
	require.NotNil(t, updated.AssignedEmployee)
	assert.Equal(t, "Alice", updated.AssignedEmployee.Name)
}

func TestStatusService_SetStatus_CompletedDateRefreshedOnRoundTrip(t *testing.T) {
	fx := createTestStatusService(t)

	ctx := context.Background()
	admin := adminIdentity()
	employeeID := uuid.New()
	account := &entity.Account{ID: uuid.New(), Status: entity.AccountStatusPending, AssignedEmployeeID: employeeID}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.metrics.EXPECT().StatusChanged(mock.Anything, mock.Anything).Return()
	fx.publisher.EXPECT().PublishAccountStatusChanged(ctx, mock.Anything).Return(nil)
	fx.employeeRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{employeeID}).Return(nil, nil)

	first := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	fx.service.now = fixedClock(first)
	_, err := fx.service.SetStatus(ctx, admin, account.ID, "completed")
	require.NoError(t, err)
	require.NotNil(t, account.CompletedDate)
	assert.Equal(t, first, *account.CompletedDate)

	fx.service.now = fixedClock(first.Add(time.Hour))
	_, err = fx.service.SetStatus(ctx, admin, account.ID, "in-progress")
	require.NoError(t, err)
	assert.Nil(t, account.CompletedDate)

	second := first.Add(24 * time.Hour)
	fx.service.now = fixedClock(second)
	_, err = fx.service.SetStatus(ctx, admin, account.ID, "completed")
	require.NoError(t, err)
	require.NotNil(t, account.CompletedDate)
	assert.Equal(t, second, *account.CompletedDate)
}

func TestStatusService_SetStatus_SameStatusPublishesNothing(t *testing.T) {
	fx := createTestStatusService(t)

	ctx := context.Background()
	completedAt := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	account := &entity.Account{
		ID:                 uuid.New(),
		Status:             entity.AccountStatusCompleted,
		CompletedDate:      timePtr(completedAt),
		AssignedEmployeeID: uuid.New(),
	}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.employeeRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)

	updated, err := fx.service.SetStatus(ctx, adminIdentity(), account.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, completedAt, *updated.CompletedDate)
}

func TestStatusService_SetStatus_InvalidStatus(t *testing.T) {
	fx := createTestStatusService(t)

	for _, status := range []string{"", "done", "COMPLETED", "in_progress"} {
		updated, err := fx.service.SetStatus(context.Background(), adminIdentity(), uuid.New(), status)

		assert.Nil(t, updated)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus), status)
	}
}

func TestStatusService_SetStatus_ForbiddenForOtherEmployee(t *testing.T) {
	fx := createTestStatusService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Status: entity.AccountStatusPending, AssignedEmployeeID: uuid.New()}
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	updated, err := fx.service.SetStatus(ctx, employeeIdentity(uuid.New()), account.ID, "completed")

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.Equal(t, entity.AccountStatusPending, account.Status)
	assert.Nil(t, account.CompletedDate)
}

func TestStatusService_SetStatus_NotFound(t *testing.T) {
	fx := createTestStatusService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.SetStatus(ctx, adminIdentity(), id, "closed")

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestStatusService_SetStatus_StoreFailureIsRetryable(t *testing.T) {
	fx := createTestStatusService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Status: entity.AccountStatusPending, AssignedEmployeeID: uuid.New()}
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(errors.New("connection reset"))

	_, err := fx.service.SetStatus(ctx, adminIdentity(), account.ID, "closed")

	require.Error(t, err)
	assert.True(t, domainerrors.IsRetryable(err))
}

func TestStatusService_SetStatus_PublishFailureKeepsWrite(t *testing.T) {
	fx := createTestStatusService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Status: entity.AccountStatusPending, AssignedEmployeeID: uuid.New()}
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.metrics.EXPECT().StatusChanged(entity.AccountStatusPending, entity.AccountStatusClosed).Return()
	fx.publisher.EXPECT().PublishAccountStatusChanged(ctx, mock.Anything).Return(errors.New("broker down"))
	fx.employeeRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)

	updated, err := fx.service.SetStatus(ctx, adminIdentity(), account.ID, "closed")

	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusClosed, updated.Status)
}

func TestStatusService_SetStatus_RequiresIdentity(t *testing.T) {
	fx := createTestStatusService(t)

	_, err := fx.service.SetStatus(context.Background(), nil, uuid.New(), "closed")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
