package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"
	"tracker/internal/util"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo   repository.AccountRepository
	employeeRepo  repository.EmployeeRepository
	cipher        service.SecretCipher
	metrics       service.AccountMetrics
	resolver      *employeeResolver
	recorder      *statusRecorder
	codeMaxLength int
	location      *time.Location
	now           func() time.Time
	logger        *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	EmployeeRepo repository.EmployeeRepository
	Cipher       service.SecretCipher
	Publisher    service.EventPublisher
	Metrics      service.AccountMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		employeeRepo: params.EmployeeRepo,
		cipher:       params.Cipher,
		metrics:      params.Metrics,
		resolver:     &employeeResolver{employeeRepo: params.EmployeeRepo},
		recorder: &statusRecorder{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		codeMaxLength: codeMaxLengthOf(params.Config),
		location:      locationOf(params.Config),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the input, encrypts the credential secret and stores a new account.
func (srv *accountService) Create(ctx context.Context, identity *entity.Identity, input *usecase.CreateAccountInput) (*entity.Account, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("account payload is required")
	}

	input.Email = normalizeEmail(input.Email)
	input.Code = strings.TrimSpace(input.Code)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := srv.checkCode(input.Code); err != nil {
		return nil, err
	}

	status := entity.AccountStatusPending
	if input.Status != "" {
		parsed, err := parseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	accountType := entity.AccountTypePS
	if input.AccountType != "" {
		accountType = entity.AccountType(input.AccountType)
	}

	employee, err := srv.assignableEmployee(ctx, input.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	sealed, err := srv.cipher.Encrypt(input.CredentialSecret)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSecretUnavailable, err.Error())
	}

	now := srv.now()
	account := &entity.Account{
		ID:                 uuid.New(),
		Email:              input.Email,
		CredentialSecret:   sealed,
		Code:               input.Code,
		AccountType:        accountType,
		Quantity:           input.Quantity,
		SearchCount:        input.SearchCount,
		AssignedEmployeeID: employee.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	account.ApplyStatus(status, now)

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, translateRepoError(err, "failed to create account")
	}

	if srv.metrics != nil {
		srv.metrics.AccountCreated(account.AccountType)
	}

	account.AssignedEmployee = employee.Ref()

	srv.log(ctx).Info("Account created",
		slog.String("account_id", account.ID.String()),
		slog.String("employee_id", employee.ID.String()),
	)

	return account, nil
}

// Get returns one account to the administrator or its assigned employee.
func (srv *accountService) Get(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.loadAccessible(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if err := srv.resolver.attach(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ListByEmployee returns the employee's accounts; an employee without accounts gets an empty list.
func (srv *accountService) ListByEmployee(ctx context.Context, identity *entity.Identity, employeeID uuid.UUID) ([]*entity.Account, error) {
	if err := requireSelfOrAdmin(identity, employeeID); err != nil {
		return nil, err
	}

	return srv.find(ctx, repository.AccountFilter{AssignedEmployeeID: &employeeID})
}

// List returns all accounts, optionally filtered by employee and status.
func (srv *accountService) List(ctx context.Context, identity *entity.Identity, filter *usecase.AccountListFilter) ([]*entity.Account, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	var repoFilter repository.AccountFilter
	if filter != nil {
		repoFilter.AssignedEmployeeID = filter.AssignedEmployeeID
		if filter.Status != "" {
			status, err := parseStatus(filter.Status)
			if err != nil {
				return nil, err
			}
			repoFilter.Status = &status
		}
	}

	return srv.find(ctx, repoFilter)
}

// Update merges patch into the account. Employees may only change status and the counters
// of their own accounts; a status change keeps completedDate consistent.
func (srv *accountService) Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, patch *usecase.AccountPatch) (*entity.Account, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if patch == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("update payload is required")
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}

	account, err := srv.loadAccessible(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if !identity.IsAdmin() && patch.TouchesAdminFields() {
		return nil, domainerrors.ErrForbidden.WithDetails("employees may only update status, quantity and searchCount")
	}

	if err := srv.applyPatch(ctx, account, patch); err != nil {
		return nil, err
	}

	from := account.Status
	now := srv.now()
	if patch.Status != nil {
		status, err := parseStatus(*patch.Status)
		if err != nil {
			return nil, err
		}
		account.ApplyStatus(status, now)
	}
	account.UpdatedAt = now

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, translateRepoError(err, "failed to update account")
	}

	srv.recorder.record(ctx, identity, from, account, false)

	if err := srv.resolver.attach(ctx, account); err != nil {
		srv.log(ctx).Warn("Failed to resolve assigned employee", slog.Any("error", err))
	}

	return account, nil
}

func (srv *accountService) applyPatch(ctx context.Context, account *entity.Account, patch *usecase.AccountPatch) error {
	if patch.Email != nil {
		account.Email = normalizeEmail(*patch.Email)
	}
	if patch.Code != nil {
		code := strings.TrimSpace(*patch.Code)
		if err := srv.checkCode(code); err != nil {
			return err
		}
		account.Code = code
	}
	if patch.AccountType != nil {
		account.AccountType = entity.AccountType(*patch.AccountType)
	}
	if patch.Quantity != nil {
		account.Quantity = *patch.Quantity
	}
	if patch.SearchCount != nil {
		account.SearchCount = *patch.SearchCount
	}
	if patch.AssignedEmployeeID != nil {
		employee, err := srv.assignableEmployee(ctx, *patch.AssignedEmployeeID)
		if err != nil {
			return err
		}
		account.AssignedEmployeeID = employee.ID
	}
	if patch.CredentialSecret != nil {
		sealed, err := srv.cipher.Encrypt(*patch.CredentialSecret)
		if err != nil {
			return errors.Wrap(domainerrors.ErrSecretUnavailable, err.Error())
		}
		account.CredentialSecret = sealed
	}

	return nil
}

// Delete permanently removes an account.
func (srv *accountService) Delete(ctx context.Context, identity *entity.Identity, id uuid.UUID) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete account")
	}

	if srv.metrics != nil {
		srv.metrics.AccountDeleted()
	}

	srv.log(ctx).Info("Account deleted", slog.String("account_id", id.String()))

	return nil
}

// RevealSecret decrypts the credential secret for an authorized caller.
func (srv *accountService) RevealSecret(ctx context.Context, identity *entity.Identity, id uuid.UUID) (string, error) {
	account, err := srv.loadAccessible(ctx, identity, id)
	if err != nil {
		return "", err
	}

	secret, err := srv.cipher.Decrypt(account.CredentialSecret)
	if err != nil {
		srv.log(ctx).Error("Failed to decrypt credential secret",
			slog.String("account_id", id.String()),
			slog.Any("error", err),
		)

		return "", errors.Wrap(domainerrors.ErrSecretUnavailable, "failed to decrypt credential secret")
	}

	srv.log(ctx).Info("Credential secret revealed",
		slog.String("account_id", id.String()),
		slog.String("employee_id", identity.EmployeeID.String()),
	)

	return secret, nil
}

// ListCompleted returns every completed account.
func (srv *accountService) ListCompleted(ctx context.Context, identity *entity.Identity) ([]*entity.Account, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	completed := entity.AccountStatusCompleted

	return srv.find(ctx, repository.AccountFilter{Status: &completed})
}

// ListCompletedOnDay returns the accounts completed during one calendar day in the configured zone.
func (srv *accountService) ListCompletedOnDay(ctx context.Context, identity *entity.Identity, day string) ([]*entity.Account, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	date, err := util.ParseDay(day, srv.location)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("date must be formatted as YYYY-MM-DD")
	}

	start, end := util.DayWindow(date, srv.location)
	completed := entity.AccountStatusCompleted

	return srv.find(ctx, repository.AccountFilter{
		Status:        &completed,
		CompletedFrom: &start,
		CompletedTo:   &end,
	})
}

func (srv *accountService) find(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.Find(ctx, filter)
	if err != nil {
		return nil, translateRepoError(err, "failed to list accounts")
	}
	if accounts == nil {
		accounts = []*entity.Account{}
	}

	if err := srv.resolver.attach(ctx, accounts...); err != nil {
		return nil, err
	}

	return accounts, nil
}

// loadAccessible reads the account and checks the caller may see it.
func (srv *accountService) loadAccessible(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Account, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find account")
	}

	if !identity.CanAccess(account) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "account is assigned to another employee")
	}

	return account, nil
}

// assignableEmployee resolves the employee an account is being assigned to.
func (srv *accountService) assignableEmployee(ctx context.Context, employeeID uuid.UUID) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindByID(ctx, employeeID)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("assignedEmployee does not exist")
	}
	if err != nil {
		return nil, translateRepoError(err, "failed to find assigned employee")
	}

	return employee, nil
}

func (srv *accountService) checkCode(code string) error {
	if code == "" {
		return domainerrors.ErrValidationFailed.WithDetails("code is required")
	}
	if utf8.RuneCountInString(code) > srv.codeMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("code must be at most %d characters", srv.codeMaxLength))
	}

	return nil
}
