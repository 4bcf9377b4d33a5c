package model

import (
	"time"

	"github.com/google/uuid"

	"tracker/internal/domain/entity"
)

// AccountModel mirrors the 'accounts' table. Timestamps are written by the services,
// so GORM's automatic time tracking is disabled.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AccountModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email              string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email"`
	CredentialSecret   string     `gorm:"type:text;not null"`
	Code               string     `gorm:"type:varchar(64);not null"`
	Status             string     `gorm:"type:varchar(20);not null;index:idx_accounts_employee_status,priority:2"`
	AccountType        string     `gorm:"type:varchar(8);not null"`
	Quantity           int        `gorm:"not null"`
	SearchCount        int        `gorm:"not null"`
	AssignedEmployeeID uuid.UUID  `gorm:"type:uuid;not null;index:idx_accounts_employee_status,priority:1"`
	CompletedDate      *time.Time `gorm:"index:idx_accounts_completed_date"`
	CreatedAt          time.Time  `gorm:"not null;autoCreateTime:false;index:idx_accounts_created_at,sort:desc"`
	UpdatedAt          time.Time  `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// NewAccountModel maps a domain account onto its row.
func NewAccountModel(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:                 account.ID,
		Email:              account.Email,
		CredentialSecret:   account.CredentialSecret,
		Code:               account.Code,
		Status:             account.Status.String(),
		AccountType:        string(account.AccountType),
		Quantity:           account.Quantity,
		SearchCount:        account.SearchCount,
		AssignedEmployeeID: account.AssignedEmployeeID,
		CompletedDate:      account.CompletedDate,
		CreatedAt:          account.CreatedAt,
		UpdatedAt:          account.UpdatedAt,
	}
}

// ToDomain maps the row back to a domain account. The employee reference is resolved by the caller.
func (m *AccountModel) ToDomain() *entity.Account {
	return &entity.Account{
		ID:                 m.ID,
		Email:              m.Email,
		CredentialSecret:   m.CredentialSecret,
		Code:               m.Code,
		Status:             entity.AccountStatus(m.Status),
		AccountType:        entity.AccountType(m.AccountType),
		Quantity:           m.Quantity,
		SearchCount:        m.SearchCount,
		AssignedEmployeeID: m.AssignedEmployeeID,
		CompletedDate:      m.CompletedDate,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
