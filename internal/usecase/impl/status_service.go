package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"
)

// statusService implements the StatusUsecase interface.
type statusService struct {
	accountRepo repository.AccountRepository
	resolver    *employeeResolver
	recorder    *statusRecorder
	now         func() time.Time
	logger      *slog.Logger
}

// StatusServiceParams holds dependencies for StatusService, injected by Fx.
type StatusServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	EmployeeRepo repository.EmployeeRepository
	Publisher    service.EventPublisher
	Metrics      service.AccountMetrics
	Logger       *slog.Logger
}

// NewStatusService is the constructor for statusService.
func NewStatusService(params StatusServiceParams) usecase.StatusUsecase {
	return &statusService{
		accountRepo: params.AccountRepo,
		resolver:    &employeeResolver{employeeRepo: params.EmployeeRepo},
		recorder: &statusRecorder{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		now:    time.Now,
		logger: params.Logger,
	}
}

func (srv *statusService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetStatus validates the status, authorizes the caller and writes the change.
// Nothing is written when validation or authorization fails.
func (srv *statusService) SetStatus(ctx context.Context, identity *entity.Identity, accountID uuid.UUID, status string) (*entity.Account, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	newStatus, err := parseStatus(status)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find account")
	}

	if !identity.CanAccess(account) {
		srv.log(ctx).Warn("Status change denied",
			slog.String("account_id", accountID.String()),
			slog.String("employee_id", identity.EmployeeID.String()),
		)

		return nil, errors.Wrap(domainerrors.ErrForbidden, "account is assigned to another employee")
	}

	from := account.Status
	now := srv.now()
	account.ApplyStatus(newStatus, now)
	account.UpdatedAt = now

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, translateRepoError(err, "failed to update account status")
	}

	srv.recorder.record(ctx, identity, from, account, false)

	if err := srv.resolver.attach(ctx, account); err != nil {
		srv.log(ctx).Warn("Failed to resolve assigned employee", slog.Any("error", err))
	}

	srv.log(ctx).Debug("Account status updated",
		slog.String("account_id", account.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", account.Status.String()),
	)

	return account, nil
}
