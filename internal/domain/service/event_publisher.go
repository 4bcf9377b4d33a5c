package service

import (
	"context"
	"time"
)

// AccountStatusChangedEvent is emitted after an account status write has been persisted.
type AccountStatusChangedEvent struct {
	RequestID     string     `json:"request_id,omitempty"` // For distributed tracing
	AccountID     string     `json:"account_id"`
	EmployeeID    string     `json:"employee_id"`
	ActorID       string     `json:"actor_id"`
	FromStatus    string     `json:"from_status"`
	ToStatus      string     `json:"to_status"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	Bulk          bool       `json:"bulk"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishAccountStatusChanged publishes a status change for downstream consumers.
	PublishAccountStatusChanged(ctx context.Context, event *AccountStatusChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
