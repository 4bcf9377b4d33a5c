package middleware

import (
	"strings"

	"tracker/internal/delivery/api/response"
	deliverycontext "tracker/internal/delivery/context"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token into the acting identity.
type AuthMiddleware struct {
	employeeUC usecase.EmployeeUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(employeeUC usecase.EmployeeUsecase) *AuthMiddleware {
	return &AuthMiddleware{employeeUC: employeeUC}
}

// Authenticate rejects requests without a valid bearer token and stores the identity for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

		identity, err := m.employeeUC.ResolveIdentity(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireAdmin lets only administrators through. It must be used after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !deliverycontext.GetIdentity(c).IsAdmin() {
			return response.AppError(c, domainerrors.ErrForbidden.WithDetails("administrator role required"))
		}

		return next(c)
	}
}
