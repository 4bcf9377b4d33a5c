package handler

import (
	"time"

	"github.com/google/uuid"

	"tracker/internal/domain/entity"
	"tracker/internal/usecase"
)

// EmployeeRefResponse is the embedded projection of an assigned employee.
type EmployeeRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AccountResponse is the wire shape of an account. The credential secret is never included.
type AccountResponse struct {
	ID               uuid.UUID            `json:"id"`
	Email            string               `json:"email"`
	Code             string               `json:"code"`
	Status           string               `json:"status"`
	AccountType      string               `json:"accountType"`
	Quantity         int                  `json:"quantity"`
	SearchCount      int                  `json:"searchCount"`
	AssignedEmployee *EmployeeRefResponse `json:"assignedEmployee"`
	CompletedDate    *time.Time           `json:"completedDate"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

func newAccountResponse(account *entity.Account) *AccountResponse {
	resp := &AccountResponse{
		ID:            account.ID,
		Email:         account.Email,
		Code:          account.Code,
		Status:        account.Status.String(),
		AccountType:   string(account.AccountType),
		Quantity:      account.Quantity,
		SearchCount:   account.SearchCount,
		CompletedDate: account.CompletedDate,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
	if account.AssignedEmployee != nil {
		resp.AssignedEmployee = &EmployeeRefResponse{
			ID:   account.AssignedEmployee.ID,
			Name: account.AssignedEmployee.Name,
		}
	}

	return resp
}

func newAccountResponses(accounts []*entity.Account) []*AccountResponse {
	out := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, newAccountResponse(account))
	}

	return out
}

// EmployeeResponse is the wire shape of an employee. The password hash is never included.
type EmployeeResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Phone      string    `json:"phone,omitempty"`
	NationalID string    `json:"nationalId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newEmployeeResponse(employee *entity.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		Role:       employee.Role.String(),
		Phone:      employee.Phone,
		NationalID: employee.NationalID,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Employee  *EmployeeResponse `json:"employee"`
}

func newAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		Employee:  newEmployeeResponse(out.Employee),
	}
}

// BulkUpdateResponse reports the accounts a bulk update wrote.
type BulkUpdateResponse struct {
	UpdatedCount    int                `json:"updatedCount"`
	UpdatedAccounts []*AccountResponse `json:"updatedAccounts"`
}

// StatusCountsResponse is the per-status partition of an employee's accounts.
type StatusCountsResponse struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Closed     int64 `json:"closed"`
	Total      int64 `json:"total"`
}

func newStatusCountsResponse(counts entity.StatusCounts) StatusCountsResponse {
	return StatusCountsResponse{
		Pending:    counts[entity.AccountStatusPending],
		InProgress: counts[entity.AccountStatusInProgress],
		Completed:  counts[entity.AccountStatusCompleted],
		Closed:     counts[entity.AccountStatusClosed],
		Total:      counts.Total(),
	}
}

// EmployeeProgressResponse is the dashboard row of one employee.
type EmployeeProgressResponse struct {
	Employee           EmployeeRefResponse  `json:"employee"`
	Counts             StatusCountsResponse `json:"counts"`
	CompletedThisMonth int64                `json:"completedThisMonth"`
}

func newEmployeeProgressResponse(progress *entity.EmployeeProgress) *EmployeeProgressResponse {
	return &EmployeeProgressResponse{
		Employee:           EmployeeRefResponse{ID: progress.Employee.ID, Name: progress.Employee.Name},
		Counts:             newStatusCountsResponse(progress.Counts),
		CompletedThisMonth: progress.CompletedThisMonth,
	}
}

// EmployeeCountResponse is one employee's tally within a daily summary.
type EmployeeCountResponse struct {
	EmployeeID uuid.UUID `json:"employeeId"`
	Name       string    `json:"name"`
	Count      int64     `json:"count"`
}

// DailyStatsResponse summarises one day's completions.
type DailyStatsResponse struct {
	Date          string                  `json:"date"`
	TotalAccounts int64                   `json:"totalAccounts"`
	ByEmployee    []EmployeeCountResponse `json:"byEmployee"`
}

func newDailyStatsResponse(stats *entity.DailyStats) *DailyStatsResponse {
	byEmployee := make([]EmployeeCountResponse, 0, len(stats.ByEmployee))
	for _, ec := range stats.ByEmployee {
		byEmployee = append(byEmployee, EmployeeCountResponse{
			EmployeeID: ec.EmployeeID,
			Name:       ec.Name,
			Count:      ec.Count,
		})
	}

	return &DailyStatsResponse{
		Date:          stats.Date,
		TotalAccounts: stats.TotalAccounts,
		ByEmployee:    byEmployee,
	}
}

// CompletedWindowResponse reports completions inside a time window.
type CompletedWindowResponse struct {
	EmployeeID uuid.UUID `json:"employeeId"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Completed  int64     `json:"completed"`
}
