package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of a bearer token.
type Claims struct {
	EmployeeID uuid.UUID
	Role       string
	ExpiresAt  time.Time
}

// TokenService issues and verifies the opaque bearer credentials handed to clients.
type TokenService interface {
	// GenerateToken issues a token for the employee and reports when it expires.
	GenerateToken(employeeID uuid.UUID, role string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature and expiry and returns the embedded claims.
	ValidateToken(token string) (*Claims, error)
}
