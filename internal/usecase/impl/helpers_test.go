package impl

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tracker/config"
	"tracker/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Accounts: &config.AccountsConfig{CodeMaxLength: 10, BulkWorkers: 2},
	}
	cfg.Env.TimeZone = "UTC"

	return cfg
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{EmployeeID: uuid.New(), Role: entity.RoleAdmin}
}

func employeeIdentity(id uuid.UUID) *entity.Identity {
	return &entity.Identity{EmployeeID: id, Role: entity.RoleEmployee}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func strPtr(s string) *string {
	return &s
}

func intPtr(n int) *int {
	return &n
}
