package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	employeeRepo repository.EmployeeRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	now          func() time.Time
	logger       *slog.Logger
}

// EmployeeServiceParams holds dependencies for EmployeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	EmployeeRepo repository.EmployeeRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	return &employeeService{
		employeeRepo: params.EmployeeRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an employee account and signs it in.
func (srv *employeeService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return srv.register(ctx, input, entity.RoleEmployee)
}

// SetupAdmin creates the first administrator. Once one exists the call is refused.
func (srv *employeeService) SetupAdmin(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	admins, err := srv.employeeRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, translateRepoError(err, "failed to count administrators")
	}
	if admins > 0 {
		srv.log(ctx).Warn("Admin setup refused: an administrator already exists")

		return nil, domainerrors.ErrForbidden.WithDetails("an administrator already exists")
	}

	return srv.register(ctx, input, entity.RoleAdmin)
}

func (srv *employeeService) register(ctx context.Context, input *usecase.RegisterInput, role entity.Role) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("registration payload is required")
	}

	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("role", role.String()), slog.String("email", input.Email))

	_, err := srv.employeeRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrEmployeeAlreadyExists
	}
	if !errors.Is(err, repository.ErrEmployeeNotFound) {
		return nil, translateRepoError(err, "failed to check employee email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()
	employee := &entity.Employee{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         role,
		Phone:        strings.TrimSpace(input.Phone),
		NationalID:   strings.TrimSpace(input.NationalID),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.employeeRepo.Create(ctx, employee); err != nil {
		return nil, translateRepoError(err, "failed to create employee")
	}

	return srv.issue(ctx, employee)
}

// Login verifies the credentials and issues a bearer token.
// Unknown emails and wrong passwords fail identically.
func (srv *employeeService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("login payload is required")
	}

	input.Email = normalizeEmail(input.Email)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	employee, err := srv.employeeRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, translateRepoError(err, "failed to find employee")
	}

	if !srv.hasher.Check(input.Password, employee.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.String("employee_id", employee.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(ctx, employee)
}

func (srv *employeeService) issue(ctx context.Context, employee *entity.Employee) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(employee.ID, employee.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  employee,
	}, nil
}

// ResolveIdentity validates the token and re-reads the employee, so role changes
// and removed employees take effect before the token expires.
func (srv *employeeService) ResolveIdentity(ctx context.Context, token string) (*entity.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token validation failed", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
	}

	employee, err := srv.employeeRepo.FindByID(ctx, claims.EmployeeID)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("employee no longer exists")
	}
	if err != nil {
		return nil, translateRepoError(err, "failed to resolve identity")
	}

	return &entity.Identity{EmployeeID: employee.ID, Role: employee.Role}, nil
}

// Me returns the calling employee.
func (srv *employeeService) Me(ctx context.Context, identity *entity.Identity) (*entity.Employee, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	return srv.findByID(ctx, identity.EmployeeID)
}

// FindByID returns an employee to an administrator or to that employee.
func (srv *employeeService) FindByID(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) (*entity.Employee, error) {
	if err := requireSelfOrAdmin(identity, employeeID); err != nil {
		return nil, err
	}

	return srv.findByID(ctx, employeeID)
}

// ListEmployees returns every employee with the employee role, ordered by name.
func (srv *employeeService) ListEmployees(ctx context.Context, identity *entity.Identity) ([]*entity.Employee, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	role := entity.RoleEmployee
	employees, err := srv.employeeRepo.List(ctx, &role)
	if err != nil {
		return nil, translateRepoError(err, "failed to list employees")
	}
	if employees == nil {
		employees = []*entity.Employee{}
	}

	return employees, nil
}

func (srv *employeeService) findByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find employee")
	}

	return employee, nil
}
