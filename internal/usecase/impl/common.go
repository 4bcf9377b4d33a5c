// Package impl contains the implementation of the application's business logic.
package impl

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
)

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct-tag validation and reports every failing field in the error details.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describeFieldError(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}

// translateRepoError maps persistence errors onto the domain taxonomy.
// Anything the repository does not classify is treated as a transient store failure.
func translateRepoError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return errors.Wrap(domainerrors.ErrAccountNotFound, action)
	case errors.Is(err, repository.ErrEmployeeNotFound):
		return errors.Wrap(domainerrors.ErrEmployeeNotFound, action)
	case errors.Is(err, repository.ErrDuplicateAccountEmail):
		return errors.Wrap(domainerrors.ErrDuplicateEmail, action)
	case errors.Is(err, repository.ErrDuplicateEmployeeEmail):
		return errors.Wrap(domainerrors.ErrEmployeeAlreadyExists, action)
	default:
		return domainerrors.NewStoreUnavailableError(err, action)
	}
}

func requireIdentity(identity *entity.Identity) error {
	if identity == nil || identity.EmployeeID == uuid.Nil {
		return domainerrors.ErrUnauthorized
	}

	return nil
}

func requireAdmin(identity *entity.Identity) error {
	if err := requireIdentity(identity); err != nil {
		return err
	}
	if !identity.IsAdmin() {
		return domainerrors.ErrForbidden.WithDetails("administrator role required")
	}

	return nil
}

func requireSelfOrAdmin(identity *entity.Identity, employeeID uuid.UUID) error {
	if err := requireIdentity(identity); err != nil {
		return err
	}
	if !identity.IsSelfOrAdmin(employeeID) {
		return domainerrors.ErrForbidden
	}

	return nil
}

// parseStatus accepts only the four account statuses.
func parseStatus(raw string) (entity.AccountStatus, error) {
	status := entity.AccountStatus(strings.TrimSpace(raw))
	if !status.IsValid() {
		return "", domainerrors.ErrInvalidStatus.WithDetails(fmt.Sprintf("got %q", raw))
	}

	return status, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// locationOf returns the configured calendar time zone, UTC when unset.
func locationOf(cfg *config.Config) *time.Location {
	if cfg == nil {
		return time.UTC
	}

	loc, err := cfg.Location()
	if err != nil {
		return time.UTC
	}

	return loc
}

func codeMaxLengthOf(cfg *config.Config) int {
	if cfg == nil || cfg.Accounts == nil || cfg.Accounts.CodeMaxLength <= 0 {
		return 10
	}

	return cfg.Accounts.CodeMaxLength
}
