package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"
	domainerrors "tracker/internal/domain/errors"
)

type observation struct {
	method string
	route  string
	code   int
}

type recordingObserver struct {
	seen []observation
}

func (r *recordingObserver) ObserveHTTP(method, route string, code int, _ time.Duration) {
	r.seen = append(r.seen, observation{method: method, route: route, code: code})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := NewRequestIDMiddleware(slog.Default())

	t.Run("keeps a client supplied id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := m.Process(func(c echo.Context) error {
			assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	m := NewLoggerMiddleware(logger, cfg)
	e := echo.New()

	t.Run("probe routes are quiet", func(t *testing.T) {
		buf.Reset()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
		c.SetPath("/health")

		require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
		assert.Empty(t, buf.String())
	})

	t.Run("error status comes from the returned error", func(t *testing.T) {
		buf.Reset()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/accounts/1", nil), httptest.NewRecorder())
		c.SetPath("/api/v1/accounts/:id")

		err := m.Handle(func(echo.Context) error { return domainerrors.ErrAccountNotFound })(c)

		require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
		assert.Contains(t, buf.String(), `"status":404`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"route":"/api/v1/accounts/:id"`)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("records the committed status", func(t *testing.T) {
		observer := &recordingObserver{}
		m := NewMetricsMiddleware(observer)
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/accounts", nil), httptest.NewRecorder())
		c.SetPath("/api/v1/accounts")

		require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusCreated) })(c))
		assert.Equal(t, []observation{{method: http.MethodPost, route: "/api/v1/accounts", code: http.StatusCreated}}, observer.seen)
	})

	t.Run("maps uncommitted errors", func(t *testing.T) {
		observer := &recordingObserver{}
		m := NewMetricsMiddleware(observer)

		for _, tc := range []struct {
			err  error
			code int
		}{
			{err: domainerrors.NewStoreUnavailableError(assert.AnError, "find"), code: http.StatusServiceUnavailable},
			{err: echo.ErrNotFound, code: http.StatusNotFound},
			{err: assert.AnError, code: http.StatusInternalServerError},
		} {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			_ = m.Handle(func(echo.Context) error { return tc.err })(c)
		}

		require.Len(t, observer.seen, 3)
		assert.Equal(t, http.StatusServiceUnavailable, observer.seen[0].code)
		assert.Equal(t, http.StatusNotFound, observer.seen[1].code)
		assert.Equal(t, http.StatusInternalServerError, observer.seen[2].code)
		assert.Equal(t, "unmatched", observer.seen[2].route)
	})
}
