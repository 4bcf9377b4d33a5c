package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	mockusecase "tracker/internal/mocks/usecase"
)

type errorBody struct {
	Error struct {
		Code      string `json:"code"`
		Details   any    `json:"details"`
		Retryable bool   `json:"retryable"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	e := echo.New()

	t.Run("missing header", func(t *testing.T) {
		m := NewAuthMiddleware(mockusecase.NewMockEmployeeUsecase(t))
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), rec)

		require.NoError(t, m.Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")
			return nil
		})(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m := NewAuthMiddleware(mockusecase.NewMockEmployeeUsecase(t))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		rec := httptest.NewRecorder()

		require.NoError(t, m.Authenticate(func(echo.Context) error { return nil })(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		employeeUC := mockusecase.NewMockEmployeeUsecase(t)
		m := NewAuthMiddleware(employeeUC)

		employeeUC.EXPECT().ResolveIdentity(mock.Anything, "expired").Return(nil, domainerrors.ErrUnauthorized).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
		rec := httptest.NewRecorder()

		require.NoError(t, m.Authenticate(func(echo.Context) error { return nil })(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Error.Code)
	})

	t.Run("valid token stores the identity", func(t *testing.T) {
		employeeUC := mockusecase.NewMockEmployeeUsecase(t)
		m := NewAuthMiddleware(employeeUC)
		identity := &entity.Identity{EmployeeID: uuid.New(), Role: entity.RoleEmployee}

		employeeUC.EXPECT().ResolveIdentity(mock.Anything, "good").Return(identity, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		c := e.NewContext(req, httptest.NewRecorder())

		called := false
		require.NoError(t, m.Authenticate(func(c echo.Context) error {
			called = true
			assert.Equal(t, identity, deliverycontext.GetIdentity(c))

			return nil
		})(c))
		assert.True(t, called)
	})
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	e := echo.New()
	m := NewAuthMiddleware(mockusecase.NewMockEmployeeUsecase(t))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil), rec)
	deliverycontext.SetIdentity(c, &entity.Identity{EmployeeID: uuid.New(), Role: entity.RoleEmployee})

	require.NoError(t, m.RequireAdmin(func(echo.Context) error { return nil })(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil), rec)
	deliverycontext.SetIdentity(c, &entity.Identity{EmployeeID: uuid.New(), Role: entity.RoleAdmin})

	require.NoError(t, m.RequireAdmin(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	e := echo.New()
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("store unavailable is retryable", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		m.HandleHTTPError(domainerrors.NewStoreUnavailableError(assert.AnError, "find accounts"), c)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		body := decodeError(t, rec)
		assert.Equal(t, "STORE_UNAVAILABLE", body.Error.Code)
		assert.True(t, body.Error.Retryable)
	})

	t.Run("echo errors keep their status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		m.HandleHTTPError(echo.ErrMethodNotAllowed, c)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)
	})

	t.Run("unknown errors become opaque 500s", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		m.HandleHTTPError(assert.AnError, c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}
