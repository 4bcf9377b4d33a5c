package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStatus_IsValid(t *testing.T) {
	for _, status := range AccountStatuses() {
		assert.True(t, status.IsValid(), status)
	}

	for _, status := range []AccountStatus{"", "done", "Completed", "in_progress"} {
		assert.False(t, status.IsValid(), status)
	}
}

func TestAccount_ApplyStatus_CompletedDateFollowsStatus(t *testing.T) {
	first := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	account := &Account{Status: AccountStatusPending}

	account.ApplyStatus(AccountStatusCompleted, first)
	require.NotNil(t, account.CompletedDate)
	assert.Equal(t, first, *account.CompletedDate)

	// Re-setting completed keeps the original completion time.
	account.ApplyStatus(AccountStatusCompleted, second)
	assert.Equal(t, first, *account.CompletedDate)

	account.ApplyStatus(AccountStatusInProgress, second)
	assert.Nil(t, account.CompletedDate)
	assert.Equal(t, AccountStatusInProgress, account.Status)

	// Completing again refreshes the date rather than reusing the stale one.
	account.ApplyStatus(AccountStatusCompleted, second)
	require.NotNil(t, account.CompletedDate)
	assert.Equal(t, second, *account.CompletedDate)
}

func TestAccount_ApplyStatus_RepairsMissingCompletedDate(t *testing.T) {
	now := time.Now()
	account := &Account{Status: AccountStatusCompleted}

	account.ApplyStatus(AccountStatusCompleted, now)

	require.NotNil(t, account.CompletedDate)
	assert.Equal(t, now, *account.CompletedDate)
}

func TestIdentity_CanAccess(t *testing.T) {
	owner := uuid.New()
	account := &Account{AssignedEmployeeID: owner}

	assert.True(t, (&Identity{EmployeeID: uuid.New(), Role: RoleAdmin}).CanAccess(account))
	assert.True(t, (&Identity{EmployeeID: owner, Role: RoleEmployee}).CanAccess(account))
	assert.False(t, (&Identity{EmployeeID: uuid.New(), Role: RoleEmployee}).CanAccess(account))

	var nobody *Identity
	assert.False(t, nobody.CanAccess(account))
}

func TestStatusCounts_ZeroFilled(t *testing.T) {
	counts := NewStatusCounts()
	counts[AccountStatusCompleted] = 2

	assert.Len(t, counts, 4)
	assert.Equal(t, int64(0), counts[AccountStatusClosed])
	assert.Equal(t, int64(2), counts.Total())
}
