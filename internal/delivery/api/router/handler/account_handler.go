package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tracker/internal/delivery/api/response"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/usecase"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	StatusUC  usecase.StatusUsecase
	BulkUC    usecase.BulkUpdateUsecase
}

// AccountHandler serves account CRUD, status changes and completion listings.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	statusUC  usecase.StatusUsecase
	bulkUC    usecase.BulkUpdateUsecase
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		statusUC:  params.StatusUC,
		bulkUC:    params.BulkUC,
	}
}

// CreateAccountRequest is the body of POST /accounts.
type CreateAccountRequest struct {
	Email            string `json:"email" validate:"required"`
	CredentialSecret string `json:"credentialSecret" validate:"required"`
	Code             string `json:"code" validate:"required"`
	Status           string `json:"status"`
	AccountType      string `json:"accountType"`
	Quantity         int    `json:"quantity"`
	SearchCount      int    `json:"searchCount"`
	AssignedEmployee string `json:"assignedEmployee" validate:"required,uuid"`
}

// UpdateAccountRequest is the body of PUT /accounts/:id. Omitted fields are left unchanged.
type UpdateAccountRequest struct {
	Email            *string `json:"email"`
	CredentialSecret *string `json:"credentialSecret"`
	Code             *string `json:"code"`
	Status           *string `json:"status"`
	AccountType      *string `json:"accountType"`
	Quantity         *int    `json:"quantity"`
	SearchCount      *int    `json:"searchCount"`
	AssignedEmployee *string `json:"assignedEmployee" validate:"omitempty,uuid"`
}

// UpdateStatusRequest is the body of PUT /accounts/:id/status.
// The status value is checked by the status service.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BulkUpdateRequest is the body of POST /accounts/bulk-update.
type BulkUpdateRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

// Create adds an account.
func (h *AccountHandler) Create(c echo.Context) error {
	var req CreateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	employeeID, err := parseUUID("assignedEmployee", req.AssignedEmployee)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Create(c.Request().Context(), deliverycontext.GetIdentity(c), &usecase.CreateAccountInput{
		Email:              req.Email,
		CredentialSecret:   req.CredentialSecret,
		Code:               req.Code,
		Status:             req.Status,
		AccountType:        req.AccountType,
		Quantity:           req.Quantity,
		SearchCount:        req.SearchCount,
		AssignedEmployeeID: employeeID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAccountResponse(account))
}

// Get returns one account.
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Get(c.Request().Context(), deliverycontext.GetIdentity(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// List returns accounts, optionally narrowed by ?assignedEmployee= and ?status=.
func (h *AccountHandler) List(c echo.Context) error {
	filter := &usecase.AccountListFilter{Status: c.QueryParam("status")}
	if raw := c.QueryParam("assignedEmployee"); raw != "" {
		employeeID, err := parseUUID("assignedEmployee", raw)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		filter.AssignedEmployeeID = &employeeID
	}

	accounts, err := h.accountUC.List(c.Request().Context(), deliverycontext.GetIdentity(c), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponses(accounts))
}

// ListByEmployee returns the accounts assigned to one employee.
func (h *AccountHandler) ListByEmployee(c echo.Context) error {
	employeeID, err := pathUUID(c, "employeeId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	accounts, err := h.accountUC.ListByEmployee(c.Request().Context(), deliverycontext.GetIdentity(c), employeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponses(accounts))
}

// Update applies a partial update.
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	patch := &usecase.AccountPatch{
		Email:            req.Email,
		CredentialSecret: req.CredentialSecret,
		Code:             req.Code,
		Status:           req.Status,
		AccountType:      req.AccountType,
		Quantity:         req.Quantity,
		SearchCount:      req.SearchCount,
	}
	if req.AssignedEmployee != nil {
		employeeID, err := parseUUID("assignedEmployee", *req.AssignedEmployee)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		patch.AssignedEmployeeID = &employeeID
	}

	account, err := h.accountUC.Update(c.Request().Context(), deliverycontext.GetIdentity(c), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// Delete removes an account.
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.Delete(c.Request().Context(), deliverycontext.GetIdentity(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// UpdateStatus moves one account to a new status.
func (h *AccountHandler) UpdateStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.statusUC.SetStatus(c.Request().Context(), deliverycontext.GetIdentity(c), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// BulkUpdate applies one status to many accounts.
func (h *AccountHandler) BulkUpdate(c echo.Context) error {
	var req BulkUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.bulkUC.BulkUpdate(c.Request().Context(), deliverycontext.GetIdentity(c), &usecase.BulkUpdateInput{
		IDs:    req.IDs,
		Status: req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &BulkUpdateResponse{
		UpdatedCount:    out.UpdatedCount,
		UpdatedAccounts: newAccountResponses(out.UpdatedAccounts),
	})
}

// RevealSecret returns the decrypted credential secret.
func (h *AccountHandler) RevealSecret(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	secret, err := h.accountUC.RevealSecret(c.Request().Context(), deliverycontext.GetIdentity(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return response.Success(c, http.StatusOK, map[string]string{"credentialSecret": secret})
}

// ListCompleted returns every completed account.
func (h *AccountHandler) ListCompleted(c echo.Context) error {
	accounts, err := h.accountUC.ListCompleted(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponses(accounts))
}

// ListCompletedOnDay returns the accounts completed on ?date=YYYY-MM-DD.
func (h *AccountHandler) ListCompletedOnDay(c echo.Context) error {
	accounts, err := h.accountUC.ListCompletedOnDay(c.Request().Context(), deliverycontext.GetIdentity(c), c.QueryParam("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponses(accounts))
}
