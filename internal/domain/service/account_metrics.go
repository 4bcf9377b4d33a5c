package service

import "tracker/internal/domain/entity"

// AccountMetrics records account activity counters.
type AccountMetrics interface {
	AccountCreated(accountType entity.AccountType)
	AccountDeleted()
	StatusChanged(from, to entity.AccountStatus)
	BulkUpdated(requested, updated int)
}
