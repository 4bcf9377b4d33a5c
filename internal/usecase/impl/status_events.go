package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"
)

// statusRecorder reports persisted status changes to metrics and the event stream.
// Publishing is observational: a failure is logged and never undoes the write.
type statusRecorder struct {
	publisher service.EventPublisher
	metrics   service.AccountMetrics
	logger    *slog.Logger
}

func (r *statusRecorder) record(ctx context.Context, actor *entity.Identity, from entity.AccountStatus, account *entity.Account, bulk bool) {
	if from == account.Status {
		return
	}

	if r.metrics != nil {
		r.metrics.StatusChanged(from, account.Status)
	}

	if r.publisher == nil {
		return
	}

	event := &service.AccountStatusChangedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		AccountID:     account.ID.String(),
		EmployeeID:    account.AssignedEmployeeID.String(),
		ActorID:       actor.EmployeeID.String(),
		FromStatus:    from.String(),
		ToStatus:      account.Status.String(),
		CompletedDate: account.CompletedDate,
		Bulk:          bulk,
		OccurredAt:    account.UpdatedAt,
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	if err := r.publisher.PublishAccountStatusChanged(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Failed to publish account status change",
			slog.String("account_id", event.AccountID),
			slog.String("to_status", event.ToStatus),
			slog.Any("error", err),
		)
	}
}
