package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB, cfg *config.Config) repository.AccountRepository {
	return &accountRepository{
		db:      db,
		timeout: storeTimeoutOf(cfg),
	}
}

// Create inserts a new account row.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	if err := repo.db.WithContext(ctx).Create(model.NewAccountModel(account)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccountEmail
		}

		return errors.Wrap(err, "failed to create account")
	}

	return nil
}

// FindByID retrieves a single account by its ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return accountM.ToDomain(), nil
}

// Find lists the accounts matching filter, newest first.
func (repo *accountRepository) Find(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	var accountMs []*model.AccountModel
	if err := repo.db.WithContext(ctx).
		Scopes(accountFilterScope(filter)).
		Order("created_at DESC").
		Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, accountM.ToDomain())
	}

	return accounts, nil
}

// Update overwrites every mutable column of an existing account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	accountM := model.NewAccountModel(account)
	result := repo.db.WithContext(ctx).Model(accountM).Select("*").Omit("created_at").Updates(accountM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateAccountEmail
		}

		return errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account row.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Count returns how many accounts match filter.
func (repo *accountRepository) Count(ctx context.Context, filter repository.AccountFilter) (int64, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Scopes(accountFilterScope(filter)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return count, nil
}

type statusCountRow struct {
	Status string
	Total  int64
}

// CountByStatus groups the accounts matching filter by status.
func (repo *accountRepository) CountByStatus(ctx context.Context, filter repository.AccountFilter) (entity.StatusCounts, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	var rows []statusCountRow
	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Scopes(accountFilterScope(filter)).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count accounts by status")
	}

	counts := make(entity.StatusCounts, len(rows))
	for _, row := range rows {
		counts[entity.AccountStatus(row.Status)] = row.Total
	}

	return counts, nil
}

// accountFilterScope narrows a query to filter. The completion window is half-open.
func accountFilterScope(filter repository.AccountFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.AssignedEmployeeID != nil {
			db = db.Where("assigned_employee_id = ?", *filter.AssignedEmployeeID)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", filter.Status.String())
		}
		if filter.CompletedFrom != nil {
			db = db.Where("completed_date >= ?", *filter.CompletedFrom)
		}
		if filter.CompletedTo != nil {
			db = db.Where("completed_date < ?", *filter.CompletedTo)
		}

		return db
	}
}
