package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
)

// employeeRepository implements the repository.EmployeeRepository interface on a MongoDB collection.
type employeeRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *mongo.Database, cfg *config.Config) repository.EmployeeRepository {
	return newEmployeeRepository(db.Collection(employeesCollection), storeTimeoutOf(cfg))
}

func newEmployeeRepository(coll *mongo.Collection, timeout time.Duration) *employeeRepository {
	return &employeeRepository{coll: coll, timeout: timeout}
}

// Create inserts a new employee document.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, newEmployeeDocument(employee)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmployeeEmail
		}

		return errors.Wrap(err, "failed to insert employee")
	}

	return nil
}

// FindByID retrieves a single employee by their ID.
func (repo *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, "failed to find employee by id")
}

// FindByEmail retrieves a single employee by their email address.
func (repo *employeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}}, "failed to find employee by email")
}

func (repo *employeeRepository) findOne(ctx context.Context, filter bson.D, action string) (*entity.Employee, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	var doc employeeDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, action)
	}

	return doc.toDomain()
}

// FindByIDs retrieves the employees among ids that exist.
func (repo *employeeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Employee, error) {
	if len(ids) == 0 {
		return []*entity.Employee{}, nil
	}

	keys := make(bson.A, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	return repo.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: keys}}}}, nil)
}

// List returns employees ordered by name, optionally restricted to a role.
func (repo *employeeRepository) List(ctx context.Context, role *entity.Role) ([]*entity.Employee, error) {
	filter := bson.D{}
	if role != nil {
		filter = append(filter, bson.E{Key: "role", Value: role.String()})
	}

	return repo.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (repo *employeeRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]*entity.Employee, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	findOpts := []*options.FindOptions{}
	if opts != nil {
		findOpts = append(findOpts, opts)
	}

	cursor, err := repo.coll.Find(ctx, filter, findOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find employees")
	}

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode employees")
	}

	employees := make([]*entity.Employee, 0, len(docs))
	for i := range docs {
		employee, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	return employees, nil
}

// CountByRole returns how many employees hold role.
func (repo *employeeRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.D{{Key: "role", Value: role.String()}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count employees by role")
	}

	return n, nil
}
