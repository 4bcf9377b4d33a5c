package model

import (
	"time"

	"github.com/google/uuid"

	"tracker/internal/domain/entity"
)

// EmployeeModel mirrors the 'employees' table.
type EmployeeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null;index:idx_employees_role_name,priority:2"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_employees_email"`
	Role         string    `gorm:"type:varchar(20);not null;index:idx_employees_role_name,priority:1"`
	Phone        string    `gorm:"type:varchar(32)"`
	NationalID   string    `gorm:"type:varchar(32)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}

// NewEmployeeModel maps a domain employee onto its row.
func NewEmployeeModel(employee *entity.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:           employee.ID,
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

// ToDomain maps the row back to a domain employee.
func (m *EmployeeModel) ToDomain() *entity.Employee {
	return &entity.Employee{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         entity.Role(m.Role),
		Phone:        m.Phone,
		NationalID:   m.NationalID,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
