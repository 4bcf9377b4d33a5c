package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"tracker/internal/delivery/api/validator"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newTestContext builds a context for method and target. A non-empty body is sent as JSON.
func newTestContext(e *echo.Echo, method, target, body string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		deliverycontext.SetIdentity(c, identity)
	}

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{EmployeeID: uuid.New(), Role: entity.RoleAdmin}
}

func employeeIdentity(id uuid.UUID) *entity.Identity {
	return &entity.Identity{EmployeeID: id, Role: entity.RoleEmployee}
}
