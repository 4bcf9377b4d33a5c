package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tracker/config"
	"tracker/internal/delivery/api/response"
	deliverycontext "tracker/internal/delivery/context"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"
	"tracker/internal/util"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Config  *config.Config
}

// StatsHandler serves progress figures.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
	loc     *time.Location
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	loc, err := params.Config.Location()
	if err != nil {
		loc = time.UTC
	}

	return &StatsHandler{
		statsUC: params.StatsUC,
		loc:     loc,
	}
}

// AllEmployees returns the dashboard rows of every employee.
func (h *StatsHandler) AllEmployees(c echo.Context) error {
	progress, err := h.statsUC.AllEmployeeProgress(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*EmployeeProgressResponse, 0, len(progress))
	for _, p := range progress {
		out = append(out, newEmployeeProgressResponse(p))
	}

	return response.Success(c, http.StatusOK, out)
}

// Employee returns one employee's status counts and completions this month.
func (h *StatsHandler) Employee(c echo.Context) error {
	employeeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	progress, err := h.statsUC.EmployeeProgress(c.Request().Context(), deliverycontext.GetIdentity(c), employeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newEmployeeProgressResponse(progress))
}

// CompletedInWindow counts an employee's completions in [from, to).
func (h *StatsHandler) CompletedInWindow(c echo.Context) error {
	employeeID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	from, err := util.ParseInstant(c.QueryParam("from"), h.loc)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("from must be RFC3339 or YYYY-MM-DD"))
	}
	to, err := util.ParseInstant(c.QueryParam("to"), h.loc)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("to must be RFC3339 or YYYY-MM-DD"))
	}

	completed, err := h.statsUC.CompletedInWindow(c.Request().Context(), deliverycontext.GetIdentity(c), employeeID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &CompletedWindowResponse{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
		Completed:  completed,
	})
}

// DailyCompleted summarises the completions on ?date=YYYY-MM-DD.
func (h *StatsHandler) DailyCompleted(c echo.Context) error {
	stats, err := h.statsUC.DailyCompletedStats(c.Request().Context(), deliverycontext.GetIdentity(c), c.QueryParam("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDailyStatsResponse(stats))
}
