package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"
)

const defaultBulkWorkers = 4

// bulkService implements the BulkUpdateUsecase interface.
// Each account is read and written independently; a missing account is skipped.
type bulkService struct {
	accountRepo repository.AccountRepository
	resolver    *employeeResolver
	recorder    *statusRecorder
	metrics     service.AccountMetrics
	workers     int
	now         func() time.Time
	logger      *slog.Logger
}

// BulkServiceParams holds dependencies for BulkService, injected by Fx.
type BulkServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	EmployeeRepo repository.EmployeeRepository
	Publisher    service.EventPublisher
	Metrics      service.AccountMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBulkService is the constructor for bulkService.
func NewBulkService(params BulkServiceParams) usecase.BulkUpdateUsecase {
	workers := defaultBulkWorkers
	if params.Config != nil && params.Config.Accounts != nil && params.Config.Accounts.BulkWorkers > 0 {
		workers = params.Config.Accounts.BulkWorkers
	}

	return &bulkService{
		accountRepo: params.AccountRepo,
		resolver:    &employeeResolver{employeeRepo: params.EmployeeRepo},
		recorder: &statusRecorder{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		metrics: params.Metrics,
		workers: workers,
		now:     time.Now,
		logger:  params.Logger,
	}
}

func (srv *bulkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BulkUpdate moves every resolvable account in input.IDs to input.Status.
// A store failure stops the batch; records written before it stay fully written.
func (srv *bulkService) BulkUpdate(ctx context.Context, identity *entity.Identity, input *usecase.BulkUpdateInput) (*usecase.BulkUpdateOutput, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	if input == nil || len(input.IDs) == 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("ids must not be empty")
	}

	status, err := parseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	ids, err := parseAccountIDs(input.IDs)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	results := make([]*entity.Account, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(srv.workers)
	for i, id := range ids {
		g.Go(func() error {
			account, err := srv.applyOne(gctx, identity, id, status, now)
			if err != nil {
				return err
			}
			results[i] = account

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Bulk update aborted", slog.Int("requested", len(ids)), slog.Any("error", err))

		return nil, err
	}

	updated := make([]*entity.Account, 0, len(results))
	for _, account := range results {
		if account != nil {
			updated = append(updated, account)
		}
	}

	if err := srv.resolver.attach(ctx, updated...); err != nil {
		srv.log(ctx).Warn("Failed to resolve assigned employees", slog.Any("error", err))
	}

	if srv.metrics != nil {
		srv.metrics.BulkUpdated(len(ids), len(updated))
	}

	srv.log(ctx).Info("Bulk update completed",
		slog.String("status", status.String()),
		slog.Int("requested", len(ids)),
		slog.Int("updated", len(updated)),
	)

	return &usecase.BulkUpdateOutput{
		UpdatedCount:    len(updated),
		UpdatedAccounts: updated,
	}, nil
}

// applyOne returns nil without error when the account does not exist.
func (srv *bulkService) applyOne(ctx context.Context, identity *entity.Identity, id uuid.UUID, status entity.AccountStatus, now time.Time) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Debug("Skipping unknown account in bulk update", slog.String("account_id", id.String()))

		return nil, nil
	}
	if err != nil {
		return nil, translateRepoError(err, "failed to find account "+id.String())
	}

	from := account.Status
	account.ApplyStatus(status, now)
	account.UpdatedAt = now

	err = srv.accountRepo.Update(ctx, account)
	if errors.Is(err, repository.ErrAccountNotFound) {
		// Deleted between the read and the write.
		return nil, nil
	}
	if err != nil {
		return nil, translateRepoError(err, "failed to update account "+id.String())
	}

	srv.recorder.record(ctx, identity, from, account, true)

	return account, nil
}

// parseAccountIDs parses and de-duplicates ids, keeping first-seen order.
func parseAccountIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))

	for _, value := range raw {
		id, err := uuid.Parse(strings.TrimSpace(value))
		if err != nil {
			return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("invalid account id %q", value))
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}
