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

// employeeRepository implements the repository.EmployeeRepository interface using GORM.
type employeeRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB, cfg *config.Config) repository.EmployeeRepository {
	return &employeeRepository{
		db:      db,
		timeout: storeTimeoutOf(cfg),
	}
}

// Create inserts a new employee row.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	if err := repo.db.WithContext(ctx).Create(model.NewEmployeeModel(employee)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmployeeEmail
		}

		return errors.Wrap(err, "failed to create employee")
	}

	return nil
}

// FindByID retrieves a single employee by their ID.
func (repo *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	return repo.first(ctx, "failed to find employee by id", "id = ?", id)
}

// FindByEmail retrieves a single employee by their email address.
func (repo *employeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return repo.first(ctx, "failed to find employee by email", "email = ?", email)
}

func (repo *employeeRepository) first(ctx context.Context, action, query string, args ...any) (*entity.Employee, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	var employeeM model.EmployeeModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, action)
	}

	return employeeM.ToDomain(), nil
}

// FindByIDs retrieves the employees among ids that exist.
func (repo *employeeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Employee, error) {
	if len(ids) == 0 {
		return []*entity.Employee{}, nil
	}

	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	var employeeMs []*model.EmployeeModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&employeeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find employees by ids")
	}

	return toEmployees(employeeMs), nil
}

// List returns employees ordered by name, optionally restricted to a role.
func (repo *employeeRepository) List(ctx context.Context, role *entity.Role) ([]*entity.Employee, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	query := repo.db.WithContext(ctx)
	if role != nil {
		query = query.Where("role = ?", role.String())
	}

	var employeeMs []*model.EmployeeModel
	if err := query.Order("name ASC").Find(&employeeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return toEmployees(employeeMs), nil
}

// CountByRole returns how many employees hold role.
func (repo *employeeRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("role = ?", role.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count employees by role")
	}

	return count, nil
}

func toEmployees(employeeMs []*model.EmployeeModel) []*entity.Employee {
	employees := make([]*entity.Employee, 0, len(employeeMs))
	for _, employeeM := range employeeMs {
		employees = append(employees, employeeM.ToDomain())
	}

	return employees
}
