package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
)

//nolint:gochecknoglobals
var accountColumns = []string{
	"id", "email", "credential_secret", "code", "status", "account_type", "quantity",
	"search_count", "assigned_employee_id", "completed_date", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Timeout = time.Second

	return cfg
}

func newTestAccount() *entity.Account {
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	return &entity.Account{
		ID:                 uuid.New(),
		Email:              "a1@example.com",
		CredentialSecret:   "sealed",
		Code:               "C-1",
		Status:             entity.AccountStatusPending,
		AccountType:        entity.AccountTypePS,
		AssignedEmployeeID: uuid.New(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, newTestConfig())
	account := newTestAccount()

	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), account))

	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), account)
	assert.True(t, errors.Is(err, repository.ErrDuplicateAccountEmail))

	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnError(errors.New("connection refused"))

	err = repo.Create(context.Background(), account)
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrDuplicateAccountEmail))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, newTestConfig())
	account := newTestAccount()
	completedAt := time.Date(2024, 7, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(
			account.ID.String(), account.Email, account.CredentialSecret, account.Code, "completed", "pc", 3,
			7, account.AssignedEmployeeID.String(), completedAt, account.CreatedAt, account.UpdatedAt,
		))

	found, err := repo.FindByID(context.Background(), account.ID)

	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, entity.AccountStatusCompleted, found.Status)
	assert.Equal(t, entity.AccountTypePC, found.AccountType)
	assert.Equal(t, 3, found.Quantity)
	assert.Equal(t, 7, found.SearchCount)
	assert.Equal(t, account.AssignedEmployeeID, found.AssignedEmployeeID)
	require.NotNil(t, found.CompletedDate)
	assert.True(t, found.CompletedDate.Equal(completedAt))

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindAppliesFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, newTestConfig())

	employeeID := uuid.New()
	status := entity.AccountStatusCompleted
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE assigned_employee_id = \$1 AND status = \$2 AND completed_date >= \$3 AND completed_date < \$4 ORDER BY created_at DESC`).
		WithArgs(employeeID, "completed", from, to).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	accounts, err := repo.Find(context.Background(), repository.AccountFilter{
		AssignedEmployeeID: &employeeID,
		Status:             &status,
		CompletedFrom:      &from,
		CompletedTo:        &to,
	})

	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, newTestConfig())
	account := newTestAccount()

	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), account))

	mock.ExpectExec(`UPDATE "accounts" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), account)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, newTestConfig())
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.True(t, errors.Is(repo.Delete(context.Background(), id), repository.ErrAccountNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Counts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, newTestConfig())
	employeeID := uuid.New()
	filter := repository.AccountFilter{AssignedEmployeeID: &employeeID}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE assigned_employee_id = \$1`).
		WithArgs(employeeID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.Count(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS total FROM "accounts" WHERE assigned_employee_id = \$1 GROUP BY`).
		WithArgs(employeeID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "total"}).
			AddRow("pending", 3).
			AddRow("completed", 1))

	counts, err := repo.CountByStatus(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCounts{
		entity.AccountStatusPending:   3,
		entity.AccountStatusCompleted: 1,
	}, counts)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts"`).
		WillReturnError(errors.New("server closed the connection unexpectedly"))

	_, err = repo.Count(context.Background(), repository.AccountFilter{})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Lookups(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db, newTestConfig())
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	id := uuid.New()
	columns := []string{"id", "name", "email", "role", "phone", "national_id", "password_hash", "created_at", "updated_at"}

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), "Dana", "dana@example.com", "admin", "", "", "hash", now, now))

	employee, err := repo.FindByEmail(context.Background(), "dana@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, employee.ID)
	assert.Equal(t, entity.RoleAdmin, employee.Role)

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrEmployeeNotFound))

	role := entity.RoleEmployee
	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE role = \$1 ORDER BY name ASC`).
		WithArgs("employee").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), "Ada", "ada@example.com", "employee", "", "", "hash", now, now).
			AddRow(uuid.NewString(), "Bo", "bo@example.com", "employee", "", "", "hash", now, now))

	employees, err := repo.List(context.Background(), &role)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Ada", employees[0].Name)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE role = \$1`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	admins, err := repo.CountByRole(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), admins)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_FindByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db, newTestConfig())

	employees, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, employees)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE id IN \(\$1,\$2\)`).
		WithArgs(ids[0], ids[1]).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(ids[1].String(), "Bo"))

	employees, err = repo.FindByIDs(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, ids[1], employees[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db, newTestConfig())

	mock.ExpectExec(`INSERT INTO "employees" (.+) VALUES (.+)`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.Employee{ID: uuid.New(), Email: "dana@example.com", Role: entity.RoleEmployee})

	assert.True(t, errors.Is(err, repository.ErrDuplicateEmployeeEmail))
	assert.NoError(t, mock.ExpectationsWereMet())
}
