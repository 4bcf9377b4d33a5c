package mongodb

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tracker/internal/domain/entity"
)

// accountDocument is the stored shape of an account. Identifiers are kept as UUID strings.
type accountDocument struct {
	ID                 string     `bson:"_id"`
	Email              string     `bson:"email"`
	CredentialSecret   string     `bson:"credentialSecret"`
	Code               string     `bson:"code"`
	Status             string     `bson:"status"`
	AccountType        string     `bson:"accountType"`
	Quantity           int        `bson:"quantity"`
	SearchCount        int        `bson:"searchCount"`
	AssignedEmployeeID string     `bson:"assignedEmployeeId"`
	CompletedDate      *time.Time `bson:"completedDate"`
	CreatedAt          time.Time  `bson:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt"`
}

// employeeDocument is the stored shape of an employee.
type employeeDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	Role         string    `bson:"role"`
	Phone        string    `bson:"phone,omitempty"`
	NationalID   string    `bson:"nationalId,omitempty"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

//nolint:gochecknoglobals
var accountIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "assignedEmployeeId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_assignedEmployeeId_status"),
	},
	{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "completedDate", Value: 1}},
		Options: options.Index().SetName("idx_status_completedDate"),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt"),
	},
}

//nolint:gochecknoglobals
var employeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "role", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("idx_role_name"),
	},
}

func newAccountDocument(account *entity.Account) *accountDocument {
	return &accountDocument{
		ID:                 account.ID.String(),
		Email:              account.Email,
		CredentialSecret:   account.CredentialSecret,
		Code:               account.Code,
		Status:             account.Status.String(),
		AccountType:        string(account.AccountType),
		Quantity:           account.Quantity,
		SearchCount:        account.SearchCount,
		AssignedEmployeeID: account.AssignedEmployeeID.String(),
		CompletedDate:      account.CompletedDate,
		CreatedAt:          account.CreatedAt,
		UpdatedAt:          account.UpdatedAt,
	}
}

func (doc *accountDocument) toDomain() (*entity.Account, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed account id %q", doc.ID)
	}
	employeeID, err := uuid.Parse(doc.AssignedEmployeeID)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed assigned employee id on account %s", doc.ID)
	}

	return &entity.Account{
		ID:                 id,
		Email:              doc.Email,
		CredentialSecret:   doc.CredentialSecret,
		Code:               doc.Code,
		Status:             entity.AccountStatus(doc.Status),
		AccountType:        entity.AccountType(doc.AccountType),
		Quantity:           doc.Quantity,
		SearchCount:        doc.SearchCount,
		AssignedEmployeeID: employeeID,
		CompletedDate:      utcPtr(doc.CompletedDate),
		CreatedAt:          doc.CreatedAt.UTC(),
		UpdatedAt:          doc.UpdatedAt.UTC(),
	}, nil
}

func newEmployeeDocument(employee *entity.Employee) *employeeDocument {
	return &employeeDocument{
		ID:           employee.ID.String(),
		Name:         employee.Name,
		Email:        employee.Email,
		Role:         employee.Role.String(),
		Phone:        employee.Phone,
		NationalID:   employee.NationalID,
		PasswordHash: employee.PasswordHash,
		CreatedAt:    employee.CreatedAt,
		UpdatedAt:    employee.UpdatedAt,
	}
}

func (doc *employeeDocument) toDomain() (*entity.Employee, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed employee id %q", doc.ID)
	}

	return &entity.Employee{
		ID:           id,
		Name:         doc.Name,
		Email:        doc.Email,
		Role:         entity.Role(doc.Role),
		Phone:        doc.Phone,
		NationalID:   doc.NationalID,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt.UTC(),
		UpdatedAt:    doc.UpdatedAt.UTC(),
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()

	return &utc
}
