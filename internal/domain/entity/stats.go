package entity

import "github.com/google/uuid"

// StatusCounts maps every account status to the number of accounts in it.
type StatusCounts map[AccountStatus]int64

// NewStatusCounts returns counts with every status present and set to zero.
func NewStatusCounts() StatusCounts {
	counts := make(StatusCounts, len(AccountStatuses()))
	for _, status := range AccountStatuses() {
		counts[status] = 0
	}

	return counts
}

// Total sums the counts across all statuses.
func (c StatusCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}

	return total
}

// EmployeeCount is a per-employee tally.
type EmployeeCount struct {
	EmployeeID uuid.UUID
	Name       string
	Count      int64
}

// DailyStats summarises the accounts completed on one calendar day.
type DailyStats struct {
	Date          string
	TotalAccounts int64
	ByEmployee    []EmployeeCount
}

// EmployeeProgress is the dashboard view of one employee's workload.
type EmployeeProgress struct {
	Employee           EmployeeRef
	Counts             StatusCounts
	Total              int64
	CompletedThisMonth int64
}
