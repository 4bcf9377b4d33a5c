package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	mockusecase "tracker/internal/mocks/usecase"
	"tracker/internal/usecase"
)

type accountHandlerFixtures struct {
	handler   *AccountHandler
	accountUC *mockusecase.MockAccountUsecase
	statusUC  *mockusecase.MockStatusUsecase
	bulkUC    *mockusecase.MockBulkUpdateUsecase
}

func createTestAccountHandler(t *testing.T) accountHandlerFixtures {
	accountUC := mockusecase.NewMockAccountUsecase(t)
	statusUC := mockusecase.NewMockStatusUsecase(t)
	bulkUC := mockusecase.NewMockBulkUpdateUsecase(t)

	return accountHandlerFixtures{
		handler: NewAccountHandler(AccountHandlerParams{
			AccountUC: accountUC,
			StatusUC:  statusUC,
			BulkUC:    bulkUC,
		}),
		accountUC: accountUC,
		statusUC:  statusUC,
		bulkUC:    bulkUC,
	}
}

func sampleAccount(employeeID uuid.UUID) *entity.Account {
	created := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	return &entity.Account{
		ID:                 uuid.New(),
		Email:              "a@example.com",
		CredentialSecret:   "ciphertext",
		Code:               "A1",
		Status:             entity.AccountStatusPending,
		AccountType:        entity.AccountTypePS,
		AssignedEmployeeID: employeeID,
		AssignedEmployee:   &entity.EmployeeRef{ID: employeeID, Name: "Alice"},
		CreatedAt:          created,
		UpdatedAt:          created,
	}
}

func TestAccountHandler_Create(t *testing.T) {
	t.Run("success renders the wire shape without the secret", func(t *testing.T) {
		tf := createTestAccountHandler(t)
		admin := adminIdentity()
		employeeID := uuid.New()
		account := sampleAccount(employeeID)

		tf.accountUC.EXPECT().
			Create(mock.Anything, admin, mock.MatchedBy(func(in *usecase.CreateAccountInput) bool {
				return in.Email == "a@example.com" && in.AssignedEmployeeID == employeeID && in.Code == "A1"
			})).
			Return(account, nil).
			Once()

		body := `{"email":"a@example.com","credentialSecret":"secret1","code":"A1","assignedEmployee":"` + employeeID.String() + `"}`
		c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/v1/accounts", body, admin)

		require.NoError(t, tf.handler.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "credentialSecret")
		assert.NotContains(t, rec.Body.String(), "ciphertext")

		var got AccountResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		assert.Equal(t, account.ID, got.ID)
		assert.Equal(t, "pending", got.Status)
		assert.Equal(t, "ps", got.AccountType)
		require.NotNil(t, got.AssignedEmployee)
		assert.Equal(t, "Alice", got.AssignedEmployee.Name)
		assert.Nil(t, got.CompletedDate)
	})

	t.Run("invalid assigned employee id is a validation error", func(t *testing.T) {
		tf := createTestAccountHandler(t)

		body := `{"email":"a@example.com","credentialSecret":"secret1","code":"A1","assignedEmployee":"nope"}`
		c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/v1/accounts", body, adminIdentity())

		require.NoError(t, tf.handler.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "assignedEmployee must be a valid UUID", env.Error.Details)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		tf := createTestAccountHandler(t)

		tf.accountUC.EXPECT().
			Create(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrDuplicateEmail).
			Once()

		body := `{"email":"a@example.com","credentialSecret":"secret1","code":"A1","assignedEmployee":"` + uuid.NewString() + `"}`
		c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/v1/accounts", body, adminIdentity())

		require.NoError(t, tf.handler.Create(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUPLICATE_EMAIL", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAccountHandler_Get(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		tf := createTestAccountHandler(t)

		c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/v1/accounts/x", "", adminIdentity())
		c.SetParamNames("id")
		c.SetParamValues("x")

		require.NoError(t, tf.handler.Get(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		tf := createTestAccountHandler(t)
		id := uuid.New()

		tf.accountUC.EXPECT().Get(mock.Anything, mock.Anything, id).Return(nil, domainerrors.ErrAccountNotFound).Once()

		c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/v1/accounts/"+id.String(), "", adminIdentity())
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, tf.handler.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("forbidden hides details", func(t *testing.T) {
		tf := createTestAccountHandler(t)
		id := uuid.New()

		tf.accountUC.EXPECT().Get(mock.Anything, mock.Anything, id).
			Return(nil, domainerrors.ErrForbidden.WithDetails("not assigned")).Once()

		c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/v1/accounts/"+id.String(), "", employeeIdentity(uuid.New()))
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, tf.handler.Get(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("store failure is returned to the error handler", func(t *testing.T) {
		tf := createTestAccountHandler(t)
		id := uuid.New()
		storeErr := domainerrors.NewStoreUnavailableError(errors.New("connection refused"), "load account")

		tf.accountUC.EXPECT().Get(mock.Anything, mock.Anything, id).Return(nil, storeErr).Once()

		c, _ := newTestContext(newTestEcho(), http.MethodGet, "/api/v1/accounts/"+id.String(), "", adminIdentity())
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		err := tf.handler.Get(c)
		require.Error(t, err)
		assert.True(t, domainerrors.IsRetryable(err))
	})
}

func TestAccountHandler_List(t *testing.T) {
	t.Run("passes query filters", func(t *testing.T) {
		tf := createTestAccountHandler(t)
		employeeID := uuid.New()

		tf.accountUC.EXPECT().
			List(mock.Anything, mock.Anything, mock.MatchedBy(func(f *usecase.AccountListFilter) bool {
				return f.Status == "completed" && f.AssignedEmployeeID != nil && *f.AssignedEmployeeID == employeeID
			})).
			Return([]*entity.Account{sampleAccount(employeeID)}, nil).
			Once()

		target := "/api/v1/accounts?status=completed&assignedEmployee=" + employeeID.String()
		c, rec := newTestContext(newTestEcho(), http.MethodGet, target, "", adminIdentity())

		require.NoError(t, tf.handler.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got []AccountResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		assert.Len(t, got, 1)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		tf := createTestAccountHandler(t)

		tf.accountUC.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()

		c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/v1/accounts", "", adminIdentity())

		require.NoError(t, tf.handler.List(c))
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("malformed employee filter", func(t *testing.T) {
		tf := createTestAccountHandler(t)

		c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/v1/accounts?assignedEmployee=bad", "", adminIdentity())

		require.NoError(t, tf.handler.List(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccountHandler_Update(t *testing.T) {
	tf := createTestAccountHandler(t)
	employeeID := uuid.New()
	account := sampleAccount(employeeID)
	account.Quantity = 3
	identity := employeeIdentity(employeeID)

	tf.accountUC.EXPECT().
		Update(mock.Anything, identity, account.ID, mock.MatchedBy(func(p *usecase.AccountPatch) bool {
			return p.Quantity != nil && *p.Quantity == 3 && p.Email == nil && p.AssignedEmployeeID == nil
		})).
		Return(account, nil).
		Once()

	c, rec := newTestContext(newTestEcho(), http.MethodPut, "/api/v1/accounts/"+account.ID.String(), `{"quantity":3}`, identity)
	c.SetParamNames("id")
	c.SetParamValues(account.ID.String())

	require.NoError(t, tf.handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tf := createTestAccountHandler(t)
		account := sampleAccount(uuid.New())
		completed := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
		account.ApplyStatus(entity.AccountStatusCompleted, completed)

		tf.statusUC.EXPECT().SetStatus(mock.Anything, mock.Anything, account.ID, "completed").Return(account, nil).Once()

		c, rec := newTestContext(newTestEcho(), http.MethodPut, "/", `{"status":"completed"}`, adminIdentity())
		c.SetParamNames("id")
		c.SetParamValues(account.ID.String())

		require.NoError(t, tf.handler.UpdateStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got AccountResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		require.NotNil(t, got.CompletedDate)
		assert.True(t, completed.Equal(*got.CompletedDate))
	})

	t.Run("invalid status", func(t *testing.T) {
		tf := createTestAccountHandler(t)
		id := uuid.New()

		tf.statusUC.EXPECT().SetStatus(mock.Anything, mock.Anything, id, "done").
			Return(nil, domainerrors.ErrInvalidStatus.WithDetails(`got "done"`)).Once()

		c, rec := newTestContext(newTestEcho(), http.MethodPut, "/", `{"status":"done"}`, adminIdentity())
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, tf.handler.UpdateStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("missing status", func(t *testing.T) {
		tf := createTestAccountHandler(t)
		id := uuid.New()

		tf.statusUC.EXPECT().SetStatus(mock.Anything, mock.Anything, id, "").
			Return(nil, domainerrors.ErrInvalidStatus.WithDetails(`got ""`)).Once()

		c, rec := newTestContext(newTestEcho(), http.MethodPut, "/", `{}`, adminIdentity())
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, tf.handler.UpdateStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAccountHandler_BulkUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tf := createTestAccountHandler(t)
		a := sampleAccount(uuid.New())
		b := sampleAccount(uuid.New())
		ids := []string{a.ID.String(), b.ID.String(), uuid.NewString()}

		tf.bulkUC.EXPECT().
			BulkUpdate(mock.Anything, mock.Anything, &usecase.BulkUpdateInput{IDs: ids, Status: "closed"}).
			Return(&usecase.BulkUpdateOutput{UpdatedCount: 2, UpdatedAccounts: []*entity.Account{a, b}}, nil).
			Once()

		body := `{"ids":["` + ids[0] + `","` + ids[1] + `","` + ids[2] + `"],"status":"closed"}`
		c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/v1/accounts/bulk-update", body, adminIdentity())

		require.NoError(t, tf.handler.BulkUpdate(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got BulkUpdateResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		assert.Equal(t, 2, got.UpdatedCount)
		assert.Len(t, got.UpdatedAccounts, 2)
	})

	t.Run("empty ids", func(t *testing.T) {
		tf := createTestAccountHandler(t)

		tf.bulkUC.EXPECT().BulkUpdate(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidInput.WithDetails("ids must not be empty")).Once()

		c, rec := newTestContext(newTestEcho(), http.MethodPost, "/", `{"ids":[],"status":"closed"}`, adminIdentity())

		require.NoError(t, tf.handler.BulkUpdate(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		tf := createTestAccountHandler(t)

		c, rec := newTestContext(newTestEcho(), http.MethodPost, "/", `{"ids":`, adminIdentity())

		require.NoError(t, tf.handler.BulkUpdate(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAccountHandler_DeleteAndSecret(t *testing.T) {
	tf := createTestAccountHandler(t)
	id := uuid.New()
	admin := adminIdentity()

	tf.accountUC.EXPECT().Delete(mock.Anything, admin, id).Return(nil).Once()
	tf.accountUC.EXPECT().RevealSecret(mock.Anything, admin, id).Return("hunter22", nil).Once()

	c, rec := newTestContext(newTestEcho(), http.MethodDelete, "/", "", admin)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, tf.handler.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newTestContext(newTestEcho(), http.MethodGet, "/", "", admin)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, tf.handler.RevealSecret(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"credentialSecret":"hunter22"}`, string(decodeEnvelope(t, rec).Data))
}

func TestAccountHandler_ListCompletedOnDay(t *testing.T) {
	tf := createTestAccountHandler(t)

	tf.accountUC.EXPECT().ListCompletedOnDay(mock.Anything, mock.Anything, "2024-07-15").Return([]*entity.Account{}, nil).Once()

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/api/v1/accounts/completed/daily?date=2024-07-15", "", adminIdentity())

	require.NoError(t, tf.handler.ListCompletedOnDay(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
