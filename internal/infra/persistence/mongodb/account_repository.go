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

// accountRepository implements the repository.AccountRepository interface on a MongoDB collection.
type accountRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *mongo.Database, cfg *config.Config) repository.AccountRepository {
	return newAccountRepository(db.Collection(accountsCollection), storeTimeoutOf(cfg))
}

func newAccountRepository(coll *mongo.Collection, timeout time.Duration) *accountRepository {
	return &accountRepository{coll: coll, timeout: timeout}
}

// Create inserts a new account document.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, newAccountDocument(account)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateAccountEmail
		}

		return errors.Wrap(err, "failed to insert account")
	}

	return nil
}

// FindByID retrieves a single account by its ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	var doc accountDocument
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return doc.toDomain()
}

// Find lists the accounts matching filter, newest first.
func (repo *accountRepository) Find(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, accountFilterDocument(filter),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accounts")
	}

	var docs []accountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode accounts")
	}

	accounts := make([]*entity.Account, 0, len(docs))
	for i := range docs {
		account, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Update replaces an existing account document. The creation time is preserved.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	doc := newAccountDocument(account)
	set := bson.D{
		{Key: "email", Value: doc.Email},
		{Key: "credentialSecret", Value: doc.CredentialSecret},
		{Key: "code", Value: doc.Code},
		{Key: "status", Value: doc.Status},
		{Key: "accountType", Value: doc.AccountType},
		{Key: "quantity", Value: doc.Quantity},
		{Key: "searchCount", Value: doc.SearchCount},
		{Key: "assignedEmployeeId", Value: doc.AssignedEmployeeID},
		{Key: "completedDate", Value: doc.CompletedDate},
		{Key: "updatedAt", Value: doc.UpdatedAt},
	}

	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: doc.ID}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateAccountEmail
		}

		return errors.Wrap(err, "failed to update account")
	}
	if result.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account document.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}
	if result.DeletedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Count returns how many accounts match filter.
func (repo *accountRepository) Count(ctx context.Context, filter repository.AccountFilter) (int64, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, accountFilterDocument(filter))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return n, nil
}

type statusCountDocument struct {
	Status string `bson:"_id"`
	Total  int64  `bson:"total"`
}

// CountByStatus groups the accounts matching filter by status.
func (repo *accountRepository) CountByStatus(ctx context.Context, filter repository.AccountFilter) (entity.StatusCounts, error) {
	ctx, cancel := withStoreTimeout(ctx, repo.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: accountFilterDocument(filter)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate account statuses")
	}

	var rows []statusCountDocument
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode account status counts")
	}

	counts := make(entity.StatusCounts, len(rows))
	for _, row := range rows {
		counts[entity.AccountStatus(row.Status)] = row.Total
	}

	return counts, nil
}

// accountFilterDocument renders filter as a query document. The completion window is half-open.
func accountFilterDocument(filter repository.AccountFilter) bson.D {
	doc := bson.D{}
	if filter.AssignedEmployeeID != nil {
		doc = append(doc, bson.E{Key: "assignedEmployeeId", Value: filter.AssignedEmployeeID.String()})
	}
	if filter.Status != nil {
		doc = append(doc, bson.E{Key: "status", Value: filter.Status.String()})
	}

	window := bson.D{}
	if filter.CompletedFrom != nil {
		window = append(window, bson.E{Key: "$gte", Value: *filter.CompletedFrom})
	}
	if filter.CompletedTo != nil {
		window = append(window, bson.E{Key: "$lt", Value: *filter.CompletedTo})
	}
	if len(window) > 0 {
		doc = append(doc, bson.E{Key: "completedDate", Value: window})
	}

	return doc
}
