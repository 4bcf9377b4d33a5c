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
	"tracker/internal/usecase"
)

// bulkServiceFixtures holds all test dependencies for bulk service tests.
type bulkServiceFixtures struct {
	service      *bulkService
	accountRepo  *mockRepo.MockAccountRepository
	employeeRepo *mockRepo.MockEmployeeRepository
	publisher    *mockService.MockEventPublisher
	metrics      *mockService.MockAccountMetrics
}

func createTestBulkService(t *testing.T) bulkServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	metrics := mockService.NewMockAccountMetrics(t)

	svc := NewBulkService(BulkServiceParams{
		AccountRepo:  accountRepo,
		EmployeeRepo: employeeRepo,
		Publisher:    publisher,
		Metrics:      metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*bulkService)

	return bulkServiceFixtures{
		service:      svc,
		accountRepo:  accountRepo,
		employeeRepo: employeeRepo,
		publisher:    publisher,
		metrics:      metrics,
	}
}

func TestBulkService_SkipsUnknownAccounts(t *testing.T) {
	fx := createTestBulkService(t)

	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	fx.service.now = fixedClock(now)

	employeeID := uuid.New()
	existing := &entity.Account{ID: uuid.New(), Status: entity.AccountStatusPending, AssignedEmployeeID: employeeID}
	missing := uuid.New()

	fx.accountRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, missing).Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().Update(mock.Anything, existing).Return(nil)
	fx.metrics.EXPECT().StatusChanged(entity.AccountStatusPending, entity.AccountStatusCompleted).Return()
	fx.publisher.EXPECT().
		PublishAccountStatusChanged(mock.Anything, mock.MatchedBy(func(e *service.AccountStatusChangedEvent) bool {
			return e.Bulk && e.AccountID == existing.ID.String()
		})).
		Return(nil)
	fx.employeeRepo.EXPECT().FindByIDs(mock.Anything, []uuid.UUID{employeeID}).
		Return([]*entity.Employee{{ID: employeeID, Name: "Bob"}}, nil)
	fx.metrics.EXPECT().BulkUpdated(2, 1).Return()

	out, err := fx.service.BulkUpdate(context.Background(), adminIdentity(), &usecase.BulkUpdateInput{
		IDs:    []string{existing.ID.String(), missing.String()},
		Status: "completed",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.UpdatedCount)
	require.Len(t, out.UpdatedAccounts, 1)
	assert.Equal(t, existing.ID, out.UpdatedAccounts[0].ID)
	assert.Equal(t, now, *out.UpdatedAccounts[0].CompletedDate)
	assert.Equal(t, "Bob", out.UpdatedAccounts[0].AssignedEmployee.Name)
}

func TestBulkService_CollapsesDuplicateIDs(t *testing.T) {
	fx := createTestBulkService(t)

	account := &entity.Account{ID: uuid.New(), Status: entity.AccountStatusCompleted, AssignedEmployeeID: uuid.New()}

	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil).Once()
	fx.accountRepo.EXPECT().Update(mock.Anything, account).Return(nil).Once()
	fx.metrics.EXPECT().StatusChanged(entity.AccountStatusCompleted, entity.AccountStatusClosed).Return().Once()
	fx.publisher.EXPECT().PublishAccountStatusChanged(mock.Anything, mock.Anything).Return(nil).Once()
	fx.employeeRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(nil, nil)
	fx.metrics.EXPECT().BulkUpdated(1, 1).Return()

	out, err := fx.service.BulkUpdate(context.Background(), adminIdentity(), &usecase.BulkUpdateInput{
		IDs:    []string{account.ID.String(), " " + account.ID.String() + " "},
		Status: "closed",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.UpdatedCount)
	assert.Nil(t, account.CompletedDate)
}

func TestBulkService_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.BulkUpdateInput
		wantErr error
	}{
		{name: "nil input", input: nil, wantErr: domainerrors.ErrInvalidInput},
		{name: "empty ids", input: &usecase.BulkUpdateInput{Status: "closed"}, wantErr: domainerrors.ErrInvalidInput},
		{name: "malformed id", input: &usecase.BulkUpdateInput{IDs: []string{"42"}, Status: "closed"}, wantErr: domainerrors.ErrInvalidInput},
		{name: "unknown status", input: &usecase.BulkUpdateInput{IDs: []string{uuid.NewString()}, Status: "archived"}, wantErr: domainerrors.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBulkService(t)

			out, err := fx.service.BulkUpdate(context.Background(), adminIdentity(), tt.input)

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, tt.wantErr), err)
		})
	}
}

func TestBulkService_AdminOnly(t *testing.T) {
	fx := createTestBulkService(t)

	out, err := fx.service.BulkUpdate(context.Background(), employeeIdentity(uuid.New()), &usecase.BulkUpdateInput{
		IDs:    []string{uuid.NewString()},
		Status: "completed",
	})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBulkService_StoreFailureAbortsBatch(t *testing.T) {
	fx := createTestBulkService(t)
	fx.service.workers = 1

	id := uuid.New()
	fx.accountRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, errors.New("i/o timeout"))

	out, err := fx.service.BulkUpdate(context.Background(), adminIdentity(), &usecase.BulkUpdateInput{
		IDs:    []string{id.String()},
		Status: "completed",
	})

	assert.Nil(t, out)
	require.Error(t, err)
	assert.True(t, domainerrors.IsRetryable(err))
}

func TestBulkService_AccountDeletedBeforeWriteIsSkipped(t *testing.T) {
	fx := createTestBulkService(t)

	account := &entity.Account{ID: uuid.New(), Status: entity.AccountStatusPending, AssignedEmployeeID: uuid.New()}
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(mock.Anything, account).Return(repository.ErrAccountNotFound)
	fx.metrics.EXPECT().BulkUpdated(1, 0).Return()

	out, err := fx.service.BulkUpdate(context.Background(), adminIdentity(), &usecase.BulkUpdateInput{
		IDs:    []string{account.ID.String()},
		Status: "in-progress",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, out.UpdatedCount)
	assert.Empty(t, out.UpdatedAccounts)
}

func TestParseAccountIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := parseAccountIDs([]string{a.String(), b.String(), a.String()})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	_, err = parseAccountIDs([]string{a.String(), "not-an-id"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
