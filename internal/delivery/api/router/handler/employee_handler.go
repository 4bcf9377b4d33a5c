package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tracker/internal/delivery/api/response"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/usecase"
)

// EmployeeHandlerParams holds dependencies for EmployeeHandler, injected by Fx.
type EmployeeHandlerParams struct {
	fx.In

	EmployeeUC usecase.EmployeeUsecase
}

// EmployeeHandler serves employee lookups.
type EmployeeHandler struct {
	employeeUC usecase.EmployeeUsecase
}

// NewEmployeeHandler is the constructor for EmployeeHandler.
func NewEmployeeHandler(params EmployeeHandlerParams) *EmployeeHandler {
	return &EmployeeHandler{employeeUC: params.EmployeeUC}
}

// Me returns the signed-in employee.
func (h *EmployeeHandler) Me(c echo.Context) error {
	employee, err := h.employeeUC.Me(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newEmployeeResponse(employee))
}

// List returns every employee with the employee role.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employeeUC.ListEmployees(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		out = append(out, newEmployeeResponse(employee))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get returns one employee.
func (h *EmployeeHandler) Get(c echo.Context) error {
	employeeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	employee, err := h.employeeUC.FindByID(c.Request().Context(), deliverycontext.GetIdentity(c), employeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newEmployeeResponse(employee))
}
